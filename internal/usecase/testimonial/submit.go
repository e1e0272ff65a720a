package testimonial

import (
	"context"

	"github.com/soulsyync/soulsyync-api/internal/apperr"
	"github.com/soulsyync/soulsyync-api/internal/auth"
	domain "github.com/soulsyync/soulsyync-api/internal/domain/testimonial"
	"github.com/soulsyync/soulsyync-api/internal/models"
)

type SubmitTestimonialInput struct {
	Name      string
	Content   string
	Rating    int
	ServiceID *uint
}

type SubmitTestimonial struct {
	repo domain.Repository
}

func NewSubmitTestimonial(repo domain.Repository) *SubmitTestimonial {
	return &SubmitTestimonial{repo: repo}
}

// Execute accepts a testimonial from anyone, authenticated or not.
// Submissions always start unapproved and stay invisible to the
// public listing until an admin approves them.
func (uc *SubmitTestimonial) Execute(
	ctx context.Context,
	p auth.Principal,
	in SubmitTestimonialInput,
) (*models.Testimonial, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.Validation("Rating must be between 1 and 5")
	}

	t := &models.Testimonial{
		Name:      in.Name,
		Content:   in.Content,
		Rating:    in.Rating,
		ServiceID: in.ServiceID,
	}
	if p.Authenticated() {
		t.UserID = &p.ID
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}
