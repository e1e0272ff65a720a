package appointment

import (
	"context"

	"github.com/soulsyync/soulsyync-api/internal/apperr"
	"github.com/soulsyync/soulsyync-api/internal/auth"
	domain "github.com/soulsyync/soulsyync-api/internal/domain/appointment"
	"github.com/soulsyync/soulsyync-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns every appointment for admins and only the
// principal's own otherwise, date DESC then time ASC in both cases.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	p auth.Principal,
) ([]models.Appointment, error) {

	if !p.Authenticated() {
		return nil, apperr.Unauthenticated("Unauthorized")
	}

	if p.IsAdmin() {
		return uc.repo.ListAll(ctx)
	}
	return uc.repo.ListByUser(ctx, p.ID)
}
