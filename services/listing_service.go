package services

import (
	"mime/multipart"

	"stayhub/apperrors"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/repositories"

	log "github.com/sirupsen/logrus"
)

type IListingService interface {
	Find(filter dto.ListingFilter, pageSize int) ([]models.Listing, int64, error)
	FindAll() ([]models.Listing, error)
	FindByID(id uint) (*models.Listing, error)
	Create(input dto.CreateListingInput, image *multipart.FileHeader, owner *models.User) (*models.Listing, error)
	Update(id uint, input dto.UpdateListingInput, image *multipart.FileHeader, actor *models.User) (*models.Listing, error)
	Delete(id uint, actor *models.User) error
}

type ListingService struct {
	repository repositories.IListingRepository
	images     IImageService
}

func NewListingService(repository repositories.IListingRepository, images IImageService) IListingService {
	return &ListingService{repository: repository, images: images}
}

func (s *ListingService) Find(filter dto.ListingFilter, pageSize int) ([]models.Listing, int64, error) {
	return s.repository.FindFiltered(filter, pageSize)
}

func (s *ListingService) FindAll() ([]models.Listing, error) {
	return s.repository.FindAll()
}

func (s *ListingService) FindByID(id uint) (*models.Listing, error) {
	return s.repository.FindByID(id)
}

func (s *ListingService) Create(input dto.CreateListingInput, image *multipart.FileHeader, owner *models.User) (*models.Listing, error) {
	newListing := models.Listing{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Location:    input.Location,
		UserID:      owner.ID,
	}

	if image != nil {
		url, filename, err := s.images.Save(image)
		if err != nil {
			return nil, err
		}
		newListing.ImageURL = url
		newListing.ImageFile = filename
	}

	if err := s.repository.Create(&newListing); err != nil {
		// roll back the stored file, the listing row never existed
		if newListing.ImageFile != "" {
			_ = s.images.Remove(newListing.ImageFile)
		}
		return nil, err
	}
	return &newListing, nil
}

func (s *ListingService) Update(id uint, input dto.UpdateListingInput, image *multipart.FileHeader, actor *models.User) (*models.Listing, error) {
	targetListing, err := s.repository.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !canModify(targetListing.UserID, actor) {
		return nil, apperrors.ErrNotOwner
	}

	targetListing.Title = input.Title
	targetListing.Description = input.Description
	targetListing.Price = input.Price
	targetListing.Location = input.Location

	oldImageFile := ""
	if image != nil {
		url, filename, err := s.images.Save(image)
		if err != nil {
			return nil, err
		}
		oldImageFile = targetListing.ImageFile
		targetListing.ImageURL = url
		targetListing.ImageFile = filename
	}

	if err := s.repository.Update(targetListing); err != nil {
		if image != nil {
			_ = s.images.Remove(targetListing.ImageFile)
		}
		return nil, err
	}

	if oldImageFile != "" {
		if err := s.images.Remove(oldImageFile); err != nil {
			log.WithFields(log.Fields{"listing_id": id, "file": oldImageFile}).
				Warn("failed to remove replaced image")
		}
	}
	return targetListing, nil
}

func (s *ListingService) Delete(id uint, actor *models.User) error {
	targetListing, err := s.repository.FindByID(id)
	if err != nil {
		return err
	}
	if !canModify(targetListing.UserID, actor) {
		return apperrors.ErrNotOwner
	}

	if err := s.repository.DeleteWithReviews(id); err != nil {
		return err
	}

	if err := s.images.Remove(targetListing.ImageFile); err != nil {
		log.WithFields(log.Fields{"listing_id": id, "file": targetListing.ImageFile}).
			Warn("failed to remove listing image")
	}
	return nil
}

// canModify allows the owner of a record and admins.
func canModify(ownerID uint, actor *models.User) bool {
	return actor != nil && (actor.ID == ownerID || actor.IsAdmin())
}
