package testimonial

import (
	"context"

	"github.com/soulsyync/soulsyync-api/internal/apperr"
	"github.com/soulsyync/soulsyync-api/internal/audit"
	"github.com/soulsyync/soulsyync-api/internal/auth"
	domain "github.com/soulsyync/soulsyync-api/internal/domain/testimonial"
)

type DeleteTestimonial struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteTestimonial(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteTestimonial {
	return &DeleteTestimonial{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes a testimonial in either moderation state.
func (uc *DeleteTestimonial) Execute(
	ctx context.Context,
	p auth.Principal,
	id uint,
) error {

	if !p.IsAdmin() {
		return apperr.Forbidden("Forbidden")
	}

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Testimonial not found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.ID,
		Action:   "testimonial_deleted",
		Entity:   "testimonial",
		EntityID: &id,
	})

	return nil
}

// ExecuteBulk deletes per id and reports how many rows actually went
// away.
func (uc *DeleteTestimonial) ExecuteBulk(
	ctx context.Context,
	p auth.Principal,
	ids []uint,
) (int, error) {

	if !p.IsAdmin() {
		return 0, apperr.Forbidden("Forbidden")
	}

	removed := 0
	for _, id := range ids {
		if err := uc.Execute(ctx, p, id); err == nil {
			removed++
		}
	}
	return removed, nil
}
