package repositories

import (
	"testing"

	"stayhub/apperrors"
	"stayhub/dto"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Review{}))
	return db
}

func seedListings(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	owner := models.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(&owner).Error)

	listings := []models.Listing{
		{Title: "Seaside Cottage", Description: "d", Price: 120, Location: "Brighton", UserID: owner.ID},
		{Title: "Forest Cabin", Description: "d", Price: 85, Location: "Black Forest", UserID: owner.ID},
		{Title: "Lake Cabin", Description: "d", Price: 60, Location: "Bled", UserID: owner.ID},
	}
	require.NoError(t, db.Create(&listings).Error)
	return &owner
}

func TestFindFilteredByQuery(t *testing.T) {
	db := setupRepoTestDB(t)
	seedListings(t, db)
	repo := NewListingRepository(db)

	listings, total, err := repo.FindFiltered(dto.ListingFilter{Query: "CABIN", Page: 1}, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, listings, 2)

	listings, total, err = repo.FindFiltered(dto.ListingFilter{Query: "bled", Page: 1}, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total, "location matches too")
	assert.Equal(t, "Lake Cabin", listings[0].Title)
}

func TestFindFilteredByPrice(t *testing.T) {
	db := setupRepoTestDB(t)
	seedListings(t, db)
	repo := NewListingRepository(db)

	min := 70.0
	listings, total, err := repo.FindFiltered(dto.ListingFilter{MinPrice: &min, Page: 1}, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, listing := range listings {
		assert.GreaterOrEqual(t, listing.Price, min)
	}
}

func TestFindFilteredPagination(t *testing.T) {
	db := setupRepoTestDB(t)
	seedListings(t, db)
	repo := NewListingRepository(db)

	first, total, err := repo.FindFiltered(dto.ListingFilter{Page: 1}, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, first, 2)

	second, _, err := repo.FindFiltered(dto.ListingFilter{Page: 2}, 2)
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestFindByIDPreloadsRelations(t *testing.T) {
	db := setupRepoTestDB(t)
	owner := seedListings(t, db)
	repo := NewListingRepository(db)

	var listing models.Listing
	require.NoError(t, db.First(&listing, "title = ?", "Seaside Cottage").Error)
	review := models.Review{Rating: 5, Comment: "Great", UserID: owner.ID, ListingID: listing.ID}
	require.NoError(t, db.Create(&review).Error)

	found, err := repo.FindByID(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.User.Username)
	require.Len(t, found.Reviews, 1)
	assert.Equal(t, "alice", found.Reviews[0].User.Username)
}

func TestDeleteWithReviews(t *testing.T) {
	db := setupRepoTestDB(t)
	owner := seedListings(t, db)
	repo := NewListingRepository(db)

	var listing models.Listing
	require.NoError(t, db.First(&listing, "title = ?", "Forest Cabin").Error)
	review := models.Review{Rating: 3, Comment: "Okay", UserID: owner.ID, ListingID: listing.ID}
	require.NoError(t, db.Create(&review).Error)

	require.NoError(t, repo.DeleteWithReviews(listing.ID))

	_, err := repo.FindByID(listing.ID)
	assert.ErrorIs(t, err, apperrors.ErrListingNotFound)

	var reviewCount int64
	require.NoError(t, db.Model(&models.Review{}).Where("listing_id = ?", listing.ID).Count(&reviewCount).Error)
	assert.Zero(t, reviewCount)

	assert.ErrorIs(t, repo.DeleteWithReviews(999), apperrors.ErrListingNotFound)
}
