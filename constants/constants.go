package constants

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Session keys
const (
	SessionName     = "stayhub_session"
	SessionUserKey  = "userID"
	SessionReturnTo = "returnTo"
	SessionMaxAge   = 7 * 24 * 60 * 60 // seven days, in seconds
)

// Context keys
const (
	ContextUserKey = "currentUser"
)

// Flash categories
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash messages
const (
	MsgWelcome        = "Welcome to StayHub!"
	MsgLoggedIn       = "Welcome back!"
	MsgLoggedOut      = "Goodbye!"
	MsgLoginRequired  = "You must be signed in first"
	MsgNoPermission   = "You do not have permission to do that"
	MsgListingCreated = "Successfully created a new listing"
	MsgListingUpdated = "Successfully updated listing"
	MsgListingDeleted = "Successfully deleted listing"
	MsgReviewCreated  = "Created new review"
	MsgReviewDeleted  = "Successfully deleted review"
)

// Error messages
const (
	ErrListingNotFound = "Listing not found"
	ErrPageNotFound    = "Page not found"
	ErrUnexpected      = "Something went wrong"
	ErrInvalidID       = "Invalid id"
	ErrInvalidInput    = "Invalid input"
)

// Defaults
const (
	DefaultSessionSecret = "notagoodsecret"
	DefaultUploadDir     = "uploads"
	DefaultTokenDBPath   = "revoked_tokens.db"
	ListingPageSize      = 12
)
