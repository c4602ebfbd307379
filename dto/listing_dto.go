package dto

type CreateListingInput struct {
	Title       string  `form:"title" binding:"required,max=100"`
	Description string  `form:"description" binding:"required"`
	Price       float64 `form:"price" binding:"required,gt=0"`
	Location    string  `form:"location" binding:"required,max=100"`
}

// UpdateListingInput carries the full edit form; every field is re-submitted.
type UpdateListingInput struct {
	Title       string  `form:"title" binding:"required,max=100"`
	Description string  `form:"description" binding:"required"`
	Price       float64 `form:"price" binding:"required,gt=0"`
	Location    string  `form:"location" binding:"required,max=100"`
}

// ListingFilter is parsed from index query parameters.
type ListingFilter struct {
	Query    string
	MinPrice *float64
	MaxPrice *float64
	Page     int
}
