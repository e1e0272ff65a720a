package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/soulsyync/soulsyync-api/internal/apperr"
	domain "github.com/soulsyync/soulsyync-api/internal/domain/testimonial"
	"github.com/soulsyync/soulsyync-api/internal/models"
)

type TestimonialGormRepository struct {
	db *gorm.DB
}

func NewTestimonialGormRepository(db *gorm.DB) *TestimonialGormRepository {
	return &TestimonialGormRepository{db: db}
}

func (r *TestimonialGormRepository) Create(
	ctx context.Context,
	t *models.Testimonial,
) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TestimonialGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Testimonial, error) {

	var t models.Testimonial
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Testimonial not found")
		}
		return nil, err
	}
	return &t, nil
}

func (r *TestimonialGormRepository) ListApproved(
	ctx context.Context,
) ([]models.Testimonial, error) {

	var ts []models.Testimonial
	if err := r.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("created_at DESC").
		Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}

func (r *TestimonialGormRepository) ListApprovedByService(
	ctx context.Context,
	serviceID uint,
) ([]models.Testimonial, error) {

	var ts []models.Testimonial
	if err := r.db.WithContext(ctx).
		Where("approved = ? AND service_id = ?", true, serviceID).
		Order("created_at DESC").
		Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}

func (r *TestimonialGormRepository) ListAll(
	ctx context.Context,
) ([]models.Testimonial, error) {

	var ts []models.Testimonial
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}

func (r *TestimonialGormRepository) Update(
	ctx context.Context,
	t *models.Testimonial,
) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TestimonialGormRepository) Delete(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(&models.Testimonial{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*TestimonialGormRepository)(nil)
