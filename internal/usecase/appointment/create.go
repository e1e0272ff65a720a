package appointment

import (
	"context"
	"time"

	"github.com/soulsyync/soulsyync-api/internal/apperr"
	"github.com/soulsyync/soulsyync-api/internal/audit"
	"github.com/soulsyync/soulsyync-api/internal/auth"
	domain "github.com/soulsyync/soulsyync-api/internal/domain/appointment"
	"github.com/soulsyync/soulsyync-api/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ServiceID uint
	Date      string
	Time      string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute books an appointment for the principal. The new record
// always starts in the pending status. There is deliberately no
// slot-conflict check: two appointments may share the same
// service/date/time (known gap, not silently hardened here).
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	p auth.Principal,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if !p.Authenticated() {
		return nil, apperr.Unauthenticated("Unauthorized")
	}

	if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return nil, apperr.Validation("Invalid date, expected YYYY-MM-DD")
	}
	if _, err := time.Parse(timeLayout, in.Time); err != nil {
		return nil, apperr.Validation("Invalid time, expected HH:MM")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		UserID:    p.ID,
		ServiceID: svc.ID,
		Date:      in.Date,
		Time:      in.Time,
		Notes:     in.Notes,
		Status:    string(domain.Initial()),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"serviceId": ap.ServiceID,
			"date":      ap.Date,
			"time":      ap.Time,
		},
	})

	return ap, nil
}
