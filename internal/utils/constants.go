package utils

import "time"

// Application Constants
const (
	AppName    = "LabourLink"
	AppVersion = "1.0.0"

	// Defaults
	DefaultCountryCode = "+91"
	DefaultTimeZone    = "UTC"

	// Pagination
	DefaultPageSize = 10
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL  = 24 * time.Hour
	JWTRefreshTokenTTL = 7 * 24 * time.Hour
	PasswordMinLength  = 6
	PasswordMaxLength  = 128

	// Booking Constants
	MaxBookingDurationHours = 24
	MaxDescriptionLength    = 1000
	MaxNotesLength          = 1000

	// Review Constants
	MinReviewRating  = 1
	MaxReviewRating  = 5
	MaxCommentLength = 500

	// Notification
	NotificationRetryAttempts = 3
	NotificationTimeout       = 30 * time.Second
	NotificationQueueSize     = 256

	// Dashboard
	RecentBookingsLimit = 5
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidCredentials   = "invalid credentials"
	ErrUserNotFound         = "user not found"
	ErrUserExists           = "user already exists"
	ErrInvalidToken         = "invalid token"
	ErrInvalidInput         = "invalid input"
	ErrInternalServer       = "internal server error"
	ErrUnauthorized         = "unauthorized"
	ErrForbidden            = "forbidden"
	ErrValidationFailed     = "validation failed"
	ErrBookingNotFound      = "booking not found"
	ErrLabourerNotFound     = "labourer not found"
	ErrLabourerUnavailable  = "labourer not available"
	ErrReviewExists         = "review already exists for this booking"
	ErrInvalidTransitionMsg = "status transition not allowed"
)

// Cache Keys
const (
	CacheKeyUserPrefix      = "user_"
	CacheKeyUserEmailPrefix = "user_email_"
	CacheKeyLabourerRating  = "labourer_rating_"
	CacheTTLUser            = 15 * time.Minute
)
