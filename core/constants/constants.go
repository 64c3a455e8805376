package constants

// Context keys
const (
	ContextTokenData = "token_data"
	ContextRequestID = "request_id"
)

// Database settings
const (
	DatabaseMaxOpenConns    = 10
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // in minutes
	DatabaseBusyTimeout     = 5000
)

// Defaults
const (
	DefaultPort             = "7070"
	DefaultDBPath           = "events.db"
	DefaultTokenExpiryHours = 24
	DefaultLogLevel         = "info"
)

// EventIDLength is the length of generated event IDs
const EventIDLength = 7
