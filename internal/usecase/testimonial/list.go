package testimonial

import (
	"context"

	"github.com/soulsyync/soulsyync-api/internal/apperr"
	"github.com/soulsyync/soulsyync-api/internal/auth"
	domain "github.com/soulsyync/soulsyync-api/internal/domain/testimonial"
	"github.com/soulsyync/soulsyync-api/internal/models"
)

type ListTestimonials struct {
	repo domain.Repository
}

func NewListTestimonials(repo domain.Repository) *ListTestimonials {
	return &ListTestimonials{repo: repo}
}

// Execute is the public listing: approved testimonials only,
// optionally narrowed to one service. There is no "list mine".
func (uc *ListTestimonials) Execute(
	ctx context.Context,
	serviceID *uint,
) ([]models.Testimonial, error) {

	if serviceID != nil {
		return uc.repo.ListApprovedByService(ctx, *serviceID)
	}
	return uc.repo.ListApproved(ctx)
}

// ExecuteAll returns every testimonial regardless of approval state;
// admin only.
func (uc *ListTestimonials) ExecuteAll(
	ctx context.Context,
	p auth.Principal,
) ([]models.Testimonial, error) {

	if !p.IsAdmin() {
		return nil, apperr.Forbidden("Forbidden")
	}
	return uc.repo.ListAll(ctx)
}
