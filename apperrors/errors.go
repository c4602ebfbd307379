package apperrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrReviewNotFound  = errors.New("review not found")
)

// Business logic errors
var (
	ErrDuplicateUser      = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotOwner           = errors.New("not the owner")
	ErrUnsupportedImage   = errors.New("unsupported image type")
	ErrTokenRevoked       = errors.New("token is revoked")
)
