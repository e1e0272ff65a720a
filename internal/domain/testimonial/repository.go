package testimonial

import (
	"context"

	"github.com/soulsyync/soulsyync-api/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		t *models.Testimonial,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Testimonial, error)

	// ListApproved returns approved testimonials, newest first.
	ListApproved(
		ctx context.Context,
	) ([]models.Testimonial, error)

	ListApprovedByService(
		ctx context.Context,
		serviceID uint,
	) ([]models.Testimonial, error)

	// ListAll returns every testimonial regardless of approval.
	ListAll(
		ctx context.Context,
	) ([]models.Testimonial, error)

	Update(
		ctx context.Context,
		t *models.Testimonial,
	) error

	// Delete reports whether a row was actually removed.
	Delete(
		ctx context.Context,
		id uint,
	) (bool, error)
}
