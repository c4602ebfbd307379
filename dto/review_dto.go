package dto

type CreateReviewInput struct {
	Rating  int    `form:"rating" binding:"required,min=1,max=5"`
	Comment string `form:"comment" binding:"required,max=1000"`
}

// ReviewSummary contains aggregate review statistics for a listing.
type ReviewSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalCount    int64   `json:"totalCount"`
}
