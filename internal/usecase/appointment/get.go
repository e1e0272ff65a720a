package appointment

import (
	"context"

	"github.com/soulsyync/soulsyync-api/internal/apperr"
	"github.com/soulsyync/soulsyync-api/internal/auth"
	domain "github.com/soulsyync/soulsyync-api/internal/domain/appointment"
	"github.com/soulsyync/soulsyync-api/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute resolves an appointment for the principal: 404 when it does
// not exist, 403 when the principal is neither its owner nor admin.
func (uc *GetAppointment) Execute(
	ctx context.Context,
	p auth.Principal,
	id uint,
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

	return ap, nil
}
