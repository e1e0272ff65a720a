package testimonial

import (
	"context"

	"github.com/soulsyync/soulsyync-api/internal/apperr"
	"github.com/soulsyync/soulsyync-api/internal/audit"
	"github.com/soulsyync/soulsyync-api/internal/auth"
	domain "github.com/soulsyync/soulsyync-api/internal/domain/testimonial"
	"github.com/soulsyync/soulsyync-api/internal/models"
)

type ApproveTestimonial struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApproveTestimonial(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ApproveTestimonial {
	return &ApproveTestimonial{
		repo:  repo,
		audit: audit,
	}
}

// Execute flips the one-way approved flag. Approving an already
// approved testimonial is a no-op that still reports success.
func (uc *ApproveTestimonial) Execute(
	ctx context.Context,
	p auth.Principal,
	id uint,
) (*models.Testimonial, error) {

	if !p.IsAdmin() {
		return nil, apperr.Forbidden("Forbidden")
	}

	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !t.Approved {
		t.Approved = true
		if err := uc.repo.Update(ctx, t); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			UserID:   &p.ID,
			Action:   "testimonial_approved",
			Entity:   "testimonial",
			EntityID: &t.ID,
		})
	}

	return t, nil
}

// ExecuteBulk applies Execute per id and reports how many succeeded.
// Missing ids count as failures, not errors.
func (uc *ApproveTestimonial) ExecuteBulk(
	ctx context.Context,
	p auth.Principal,
	ids []uint,
) (int, error) {

	if !p.IsAdmin() {
		return 0, apperr.Forbidden("Forbidden")
	}

	approved := 0
	for _, id := range ids {
		if _, err := uc.Execute(ctx, p, id); err == nil {
			approved++
		}
	}
	return approved, nil
}
