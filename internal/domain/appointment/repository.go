package appointment

import (
	"context"

	"github.com/soulsyync/soulsyync-api/internal/models"
)

type Repository interface {
	// -------- Service (existence check on booking) --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// ListAll returns every appointment, date DESC then time ASC.
	ListAll(
		ctx context.Context,
	) ([]models.Appointment, error)

	// ListByUser returns one user's appointments in the same order.
	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error
}
