package services

import (
	"testing"

	"stayhub/apperrors"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestReviewService(t *testing.T) (IReviewService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	listings := repositories.NewListingRepository(db)
	return NewReviewService(repositories.NewReviewRepository(db), listings), db
}

func createTestListing(t *testing.T, db *gorm.DB, owner *models.User) *models.Listing {
	t.Helper()
	listing := models.Listing{
		Title:       "Seaside Cottage",
		Description: "Right on the beach",
		Price:       120,
		Location:    "Brighton",
		UserID:      owner.ID,
	}
	require.NoError(t, db.Create(&listing).Error)
	return &listing
}

func TestCreateReview(t *testing.T) {
	service, db := newTestReviewService(t)
	owner := createTestUser(t, db, "alice", constants.RoleUser)
	reviewer := createTestUser(t, db, "bob", constants.RoleUser)
	listing := createTestListing(t, db, owner)

	review, err := service.Create(listing.ID, dto.CreateReviewInput{Rating: 4, Comment: "Lovely"}, reviewer)
	require.NoError(t, err)
	assert.Equal(t, reviewer.ID, review.UserID)
	assert.Equal(t, listing.ID, review.ListingID)
}

func TestCreateReviewMissingListing(t *testing.T) {
	service, db := newTestReviewService(t)
	reviewer := createTestUser(t, db, "bob", constants.RoleUser)

	_, err := service.Create(999, dto.CreateReviewInput{Rating: 4, Comment: "Lovely"}, reviewer)
	assert.ErrorIs(t, err, apperrors.ErrListingNotFound)
}

func TestDeleteReviewOwnership(t *testing.T) {
	service, db := newTestReviewService(t)
	owner := createTestUser(t, db, "alice", constants.RoleUser)
	reviewer := createTestUser(t, db, "bob", constants.RoleUser)
	admin := createTestUser(t, db, "root", constants.RoleAdmin)
	listing := createTestListing(t, db, owner)

	first, err := service.Create(listing.ID, dto.CreateReviewInput{Rating: 4, Comment: "Lovely"}, reviewer)
	require.NoError(t, err)

	err = service.Delete(listing.ID, first.ID, owner)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner, "listing owner is not the review author")

	require.NoError(t, service.Delete(listing.ID, first.ID, reviewer))

	second, err := service.Create(listing.ID, dto.CreateReviewInput{Rating: 2, Comment: "Meh"}, reviewer)
	require.NoError(t, err)
	assert.NoError(t, service.Delete(listing.ID, second.ID, admin), "admins may delete any review")
}

func TestDeleteReviewWrongListing(t *testing.T) {
	service, db := newTestReviewService(t)
	owner := createTestUser(t, db, "alice", constants.RoleUser)
	reviewer := createTestUser(t, db, "bob", constants.RoleUser)
	listing := createTestListing(t, db, owner)
	otherListing := createTestListing(t, db, owner)

	review, err := service.Create(listing.ID, dto.CreateReviewInput{Rating: 4, Comment: "Lovely"}, reviewer)
	require.NoError(t, err)

	err = service.Delete(otherListing.ID, review.ID, reviewer)
	assert.ErrorIs(t, err, apperrors.ErrReviewNotFound)
}

func TestReviewSummary(t *testing.T) {
	service, db := newTestReviewService(t)
	owner := createTestUser(t, db, "alice", constants.RoleUser)
	reviewer := createTestUser(t, db, "bob", constants.RoleUser)
	listing := createTestListing(t, db, owner)

	summary, err := service.Summary(listing.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalCount)
	assert.Zero(t, summary.AverageRating)

	_, err = service.Create(listing.ID, dto.CreateReviewInput{Rating: 4, Comment: "Good"}, reviewer)
	require.NoError(t, err)
	_, err = service.Create(listing.ID, dto.CreateReviewInput{Rating: 5, Comment: "Great"}, reviewer)
	require.NoError(t, err)

	summary, err = service.Summary(listing.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, summary.TotalCount)
	assert.InDelta(t, 4.5, summary.AverageRating, 0.001)
}
