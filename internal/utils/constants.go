package utils

// Application Constants
const (
	AppName    = "RiderCritic"
	AppVersion = "1.0.0"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Ratings
	MinRating = 0.0
	MaxRating = 5.0

	// Suggestion ranker
	MaxSuggestions        = 8
	SuggestMotorcycleScan = 200
	SuggestCriticScan     = 100

	// File Upload
	MaxImageSize       = 5 * 1024 * 1024 // 5MB
	ThumbnailMaxWidth  = 480
	ThumbnailMaxHeight = 480

	// Status strings for API responses
	StatusSuccess = "success"
	StatusError   = "error"
)

// Common error messages
const (
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Authentication required"
	ErrForbidden        = "Insufficient permissions"
)
