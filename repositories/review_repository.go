package repositories

import (
	"errors"

	"stayhub/apperrors"
	"stayhub/dto"
	"stayhub/models"

	"gorm.io/gorm"
)

type IReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id uint) (*models.Review, error)
	Delete(id uint) error
	Summary(listingID uint) (dto.ReviewSummary, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) IReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepository) FindByID(id uint) (*models.Review, error) {
	var review models.Review
	result := r.db.First(&review, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, result.Error
	}
	return &review, nil
}

func (r *ReviewRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) Summary(listingID uint) (dto.ReviewSummary, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&models.Review{}).
		Where("listing_id = ?", listingID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&row).Error
	if err != nil {
		return dto.ReviewSummary{}, err
	}
	return dto.ReviewSummary{AverageRating: row.Avg, TotalCount: row.Count}, nil
}
