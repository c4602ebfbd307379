package services

import (
	"stayhub/apperrors"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/repositories"
)

type IReviewService interface {
	Create(listingID uint, input dto.CreateReviewInput, author *models.User) (*models.Review, error)
	Delete(listingID uint, reviewID uint, actor *models.User) error
	Summary(listingID uint) (dto.ReviewSummary, error)
}

type ReviewService struct {
	repository repositories.IReviewRepository
	listings   repositories.IListingRepository
}

func NewReviewService(repository repositories.IReviewRepository, listings repositories.IListingRepository) IReviewService {
	return &ReviewService{repository: repository, listings: listings}
}

func (s *ReviewService) Create(listingID uint, input dto.CreateReviewInput, author *models.User) (*models.Review, error) {
	if _, err := s.listings.FindByID(listingID); err != nil {
		return nil, err
	}

	newReview := models.Review{
		Rating:    input.Rating,
		Comment:   input.Comment,
		UserID:    author.ID,
		ListingID: listingID,
	}
	if err := s.repository.Create(&newReview); err != nil {
		return nil, err
	}
	return &newReview, nil
}

func (s *ReviewService) Delete(listingID uint, reviewID uint, actor *models.User) error {
	targetReview, err := s.repository.FindByID(reviewID)
	if err != nil {
		return err
	}
	if targetReview.ListingID != listingID {
		return apperrors.ErrReviewNotFound
	}
	if !canModify(targetReview.UserID, actor) {
		return apperrors.ErrNotOwner
	}
	return s.repository.Delete(reviewID)
}

func (s *ReviewService) Summary(listingID uint) (dto.ReviewSummary, error) {
	return s.repository.Summary(listingID)
}
