package appointment

import (
	"context"

	"github.com/soulsyync/soulsyync-api/internal/apperr"
	"github.com/soulsyync/soulsyync-api/internal/audit"
	"github.com/soulsyync/soulsyync-api/internal/auth"
	domain "github.com/soulsyync/soulsyync-api/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-removes the appointment after the usual ownership
// check. The UI surfaces this as "cancel", which conflates
// cancellation with deletion; that conflation is preserved, and the
// audit trail keeps the only record that the row existed.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	p auth.Principal,
	id uint,
) error {

	if !p.Authenticated() {
		return apperr.Unauthenticated("Unauthorized")
	}

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !p.CanAccess(ap.UserID) {
		return apperr.Forbidden("Forbidden")
	}

	if err := uc.repo.Delete(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.ID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date":   ap.Date,
			"time":   ap.Time,
			"status": ap.Status,
		},
	})

	return nil
}
