package constants

// Context keys
const (
	ContextTokenData = "token_data"
	ContextRequestID = "request_id"
)

// Roles
const (
	RoleMember  = "member"
	RolePartner = "partner"
)

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// DefaultUserPhoto is returned for users without an uploaded photo.
const DefaultUserPhoto = "/assets/images/user-male-circle.jpg"

// Booking allocation retries one aborted transaction before giving up.
const BookingTxMaxAttempts = 2

// CalendarCacheTTLSeconds bounds staleness of the cached calendar view.
const CalendarCacheTTLSeconds = 30
