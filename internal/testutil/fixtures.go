package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/soulsyync/soulsyync-api/internal/models"
)

// Plaintext password used by every fixture user.
const FixturePassword = "secret123"

func CreateUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(FixturePassword), bcrypt.MinCost)
	require.NoError(t, err)

	suffix := uuid.NewString()[:8]
	user := &models.User{
		Username: fmt.Sprintf("user-%s", suffix),
		Password: string(hashed),
		Email:    fmt.Sprintf("user-%s@example.com", suffix),
		FullName: "Test User",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateService(t *testing.T, db *gorm.DB) *models.Service {
	t.Helper()

	svc := &models.Service{
		Name:        "Tarot Reading",
		Description: "Guidance through the symbolic language of tarot.",
		Price:       7500,
		Duration:    45,
	}
	require.NoError(t, db.Create(svc).Error)
	return svc
}

func CreateAppointment(t *testing.T, db *gorm.DB, userID, serviceID uint, date, at, status string) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		UserID:    userID,
		ServiceID: serviceID,
		Date:      date,
		Time:      at,
		Status:    status,
	}
	require.NoError(t, db.Create(ap).Error)
	return ap
}

func CreateTestimonial(t *testing.T, db *gorm.DB, approved bool) *models.Testimonial {
	t.Helper()

	ts := &models.Testimonial{
		Name:     "Happy Client",
		Content:  "A genuinely transformative session.",
		Rating:   5,
		Approved: approved,
	}
	require.NoError(t, db.Create(ts).Error)
	return ts
}
