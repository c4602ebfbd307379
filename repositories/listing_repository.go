package repositories

import (
	"errors"
	"strings"

	"stayhub/apperrors"
	"stayhub/dto"
	"stayhub/models"

	"gorm.io/gorm"
)

type IListingRepository interface {
	FindFiltered(filter dto.ListingFilter, pageSize int) ([]models.Listing, int64, error)
	FindAll() ([]models.Listing, error)
	FindByID(id uint) (*models.Listing, error)
	Create(listing *models.Listing) error
	Update(listing *models.Listing) error
	DeleteWithReviews(id uint) error
}

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) IListingRepository {
	return &ListingRepository{db: db}
}

// FindFiltered returns one page of listings matching the filter, newest
// first, together with the total match count for pagination.
func (r *ListingRepository) FindFiltered(filter dto.ListingFilter, pageSize int) ([]models.Listing, int64, error) {
	query := r.db.Model(&models.Listing{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(location) LIKE ?", like, like)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	var listings []models.Listing
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&listings).Error
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *ListingRepository) FindAll() ([]models.Listing, error) {
	var listings []models.Listing
	if err := r.db.Preload("User").Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *ListingRepository) FindByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	result := r.db.
		Preload("User").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Preload("Reviews.User").
		First(&listing, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, result.Error
	}
	return &listing, nil
}

func (r *ListingRepository) Create(listing *models.Listing) error {
	return r.db.Create(listing).Error
}

func (r *ListingRepository) Update(listing *models.Listing) error {
	return r.db.Save(listing).Error
}

// DeleteWithReviews removes a listing and its reviews in one transaction:
// reviews are detached first, then the listing itself.
func (r *ListingRepository) DeleteWithReviews(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Listing{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrListingNotFound
		}
		return nil
	})
}
