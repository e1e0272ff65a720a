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

// Patch carries the fields an update may touch; nil means untouched.
type Patch struct {
	ServiceID *uint
	Date      *string
	Time      *string
	Notes     *string
	Status    *string
	Summary   *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a patch under the ownership rules of Get. A
// non-admin owner may only change notes; every other field in their
// patch is silently dropped. Admins may set any field, with the status
// restricted to the known taxonomy but NOT to a transition table:
// completed -> pending is accepted.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	p auth.Principal,
	id uint,
	patch Patch,
) (*models.Appointment, error) {

	if !p.Authenticated() {
		return nil, apperr.Unauthenticated("Unauthorized")
	}

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !p.CanAccess(ap.UserID) {
		return nil, apperr.Forbidden("Forbidden")
	}

	if patch.Notes != nil {
		ap.Notes = *patch.Notes
	}

	if p.IsAdmin() {
		if patch.ServiceID != nil {
			ap.ServiceID = *patch.ServiceID
		}
		if patch.Date != nil {
			if _, err := time.Parse(dateLayout, *patch.Date); err != nil {
				return nil, apperr.Validation("Invalid date, expected YYYY-MM-DD")
			}
			ap.Date = *patch.Date
		}
		if patch.Time != nil {
			if _, err := time.Parse(timeLayout, *patch.Time); err != nil {
				return nil, apperr.Validation("Invalid time, expected HH:MM")
			}
			ap.Time = *patch.Time
		}
		if patch.Status != nil {
			if !domain.Status(*patch.Status).Known() {
				return nil, apperr.Validation("Invalid appointment status")
			}
			ap.Status = *patch.Status
		}
		if patch.Summary != nil {
			ap.Summary = *patch.Summary
		}
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.ID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	return ap, nil
}
