package appointment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/soulsyync/soulsyync-api/internal/apperr"
	"github.com/soulsyync/soulsyync-api/internal/audit"
	"github.com/soulsyync/soulsyync-api/internal/auth"
	domain "github.com/soulsyync/soulsyync-api/internal/domain/appointment"
	"github.com/soulsyync/soulsyync-api/internal/infra/repository"
	"github.com/soulsyync/soulsyync-api/internal/models"
	"github.com/soulsyync/soulsyync-api/internal/testutil"
	ucAppointment "github.com/soulsyync/soulsyync-api/internal/usecase/appointment"
)

func principalFor(u *models.User) auth.Principal {
	return auth.Principal{ID: u.ID, Role: u.Role}
}

func newRepo(db *gorm.DB) (*repository.AppointmentGormRepository, *audit.Dispatcher) {
	return repository.NewAppointmentGormRepository(db), audit.NewDispatcher(audit.New(db))
}

func TestCreateAppointment(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo, dispatcher := newRepo(db)
	uc := ucAppointment.NewCreateAppointment(repo, dispatcher)

	user := testutil.CreateUser(t, db, models.RoleUser)
	svc := testutil.CreateService(t, db)

	t.Run("anonymous is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), auth.Anonymous(), ucAppointment.CreateAppointmentInput{
			ServiceID: svc.ID, Date: "2026-09-10", Time: "14:00",
		})
		assert.True(t, apperr.Is(err, apperr.KindUnauthenticated))
	})

	t.Run("bad date is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), principalFor(user), ucAppointment.CreateAppointmentInput{
			ServiceID: svc.ID, Date: "10/09/2026", Time: "14:00",
		})
		assert.True(t, apperr.Is(err, apperr.KindValidation))
	})

	t.Run("bad time is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), principalFor(user), ucAppointment.CreateAppointmentInput{
			ServiceID: svc.ID, Date: "2026-09-10", Time: "2pm",
		})
		assert.True(t, apperr.Is(err, apperr.KindValidation))
	})

	t.Run("unknown service is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), principalFor(user), ucAppointment.CreateAppointmentInput{
			ServiceID: 9999, Date: "2026-09-10", Time: "14:00",
		})
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindValidation))
		assert.Equal(t, "Service not found", err.Error())
	})

	t.Run("new appointments start pending", func(t *testing.T) {
		ap, err := uc.Execute(context.Background(), principalFor(user), ucAppointment.CreateAppointmentInput{
			ServiceID: svc.ID, Date: "2026-09-10", Time: "14:00", Notes: "first visit",
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusPending), ap.Status)
		assert.Equal(t, user.ID, ap.UserID)
	})

	t.Run("overlapping slots are allowed", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), principalFor(user), ucAppointment.CreateAppointmentInput{
			ServiceID: svc.ID, Date: "2026-09-10", Time: "14:00",
		})
		assert.NoError(t, err)
	})
}

func TestGetAppointmentOwnership(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo, _ := newRepo(db)
	uc := ucAppointment.NewGetAppointment(repo)

	owner := testutil.CreateUser(t, db, models.RoleUser)
	other := testutil.CreateUser(t, db, models.RoleUser)
	admin := testutil.CreateUser(t, db, models.RoleAdmin)
	svc := testutil.CreateService(t, db)
	ap := testutil.CreateAppointment(t, db, owner.ID, svc.ID, "2026-09-10", "14:00", "pending")

	t.Run("owner reads own", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), principalFor(owner), ap.ID)
		require.NoError(t, err)
		assert.Equal(t, ap.ID, got.ID)
	})

	t.Run("admin reads anyone's", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), principalFor(admin), ap.ID)
		assert.NoError(t, err)
	})

	t.Run("stranger gets forbidden", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), principalFor(other), ap.ID)
		assert.True(t, apperr.Is(err, apperr.KindForbidden))
	})

	t.Run("missing id gets not found before any ownership check", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), principalFor(other), 9999)
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})
}

func TestUpdateAppointment(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo, dispatcher := newRepo(db)
	uc := ucAppointment.NewUpdateAppointment(repo, dispatcher)

	owner := testutil.CreateUser(t, db, models.RoleUser)
	admin := testutil.CreateUser(t, db, models.RoleAdmin)
	svc := testutil.CreateService(t, db)

	t.Run("non-admin patch only touches notes", func(t *testing.T) {
		ap := testutil.CreateAppointment(t, db, owner.ID, svc.ID, "2026-09-10", "14:00", "pending")

		notes := "please call ahead"
		status := "confirmed"
		got, err := uc.Execute(context.Background(), principalFor(owner), ap.ID, ucAppointment.Patch{
			Notes:  &notes,
			Status: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, notes, got.Notes)
		assert.Equal(t, "pending", got.Status)
	})

	t.Run("admin may move status backwards", func(t *testing.T) {
		ap := testutil.CreateAppointment(t, db, owner.ID, svc.ID, "2026-09-11", "10:00", "completed")

		status := "pending"
		got, err := uc.Execute(context.Background(), principalFor(admin), ap.ID, ucAppointment.Patch{
			Status: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", got.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		ap := testutil.CreateAppointment(t, db, owner.ID, svc.ID, "2026-09-12", "10:00", "pending")

		status := "rescheduled"
		_, err := uc.Execute(context.Background(), principalFor(admin), ap.ID, ucAppointment.Patch{
			Status: &status,
		})
		assert.True(t, apperr.Is(err, apperr.KindValidation))
		assert.Equal(t, "Invalid appointment status", err.Error())
	})

	t.Run("admin sets summary", func(t *testing.T) {
		ap := testutil.CreateAppointment(t, db, owner.ID, svc.ID, "2026-09-13", "10:00", "completed")

		summary := "client made good progress"
		got, err := uc.Execute(context.Background(), principalFor(admin), ap.ID, ucAppointment.Patch{
			Summary: &summary,
		})
		require.NoError(t, err)
		assert.Equal(t, summary, got.Summary)
	})
}

func TestListAppointmentsVisibility(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo, _ := newRepo(db)
	uc := ucAppointment.NewListAppointments(repo)

	alice := testutil.CreateUser(t, db, models.RoleUser)
	bob := testutil.CreateUser(t, db, models.RoleUser)
	admin := testutil.CreateUser(t, db, models.RoleAdmin)
	svc := testutil.CreateService(t, db)

	testutil.CreateAppointment(t, db, alice.ID, svc.ID, "2026-09-10", "14:00", "pending")
	testutil.CreateAppointment(t, db, alice.ID, svc.ID, "2026-09-12", "09:00", "pending")
	testutil.CreateAppointment(t, db, bob.ID, svc.ID, "2026-09-12", "11:00", "pending")

	t.Run("user sees only their own", func(t *testing.T) {
		aps, err := uc.Execute(context.Background(), principalFor(alice))
		require.NoError(t, err)
		require.Len(t, aps, 2)
		for _, ap := range aps {
			assert.Equal(t, alice.ID, ap.UserID)
		}
	})

	t.Run("admin sees everything, date desc then time asc", func(t *testing.T) {
		aps, err := uc.Execute(context.Background(), principalFor(admin))
		require.NoError(t, err)
		require.Len(t, aps, 3)
		assert.Equal(t, "2026-09-12", aps[0].Date)
		assert.Equal(t, "09:00", aps[0].Time)
		assert.Equal(t, "11:00", aps[1].Time)
		assert.Equal(t, "2026-09-10", aps[2].Date)
	})
}

func TestDeleteAppointment(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo, dispatcher := newRepo(db)
	uc := ucAppointment.NewDeleteAppointment(repo, dispatcher)

	owner := testutil.CreateUser(t, db, models.RoleUser)
	other := testutil.CreateUser(t, db, models.RoleUser)
	svc := testutil.CreateService(t, db)

	t.Run("stranger cannot delete", func(t *testing.T) {
		ap := testutil.CreateAppointment(t, db, owner.ID, svc.ID, "2026-09-10", "14:00", "pending")

		err := uc.Execute(context.Background(), principalFor(other), ap.ID)
		assert.True(t, apperr.Is(err, apperr.KindForbidden))
	})

	t.Run("owner delete removes the row", func(t *testing.T) {
		ap := testutil.CreateAppointment(t, db, owner.ID, svc.ID, "2026-09-11", "14:00", "pending")

		require.NoError(t, uc.Execute(context.Background(), principalFor(owner), ap.ID))

		var count int64
		db.Model(&models.Appointment{}).Where("id = ?", ap.ID).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("missing id gets not found", func(t *testing.T) {
		err := uc.Execute(context.Background(), principalFor(owner), 9999)
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})
}
