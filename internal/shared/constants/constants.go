package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderXRequestID = "X-Request-ID"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableTickets     = "tickets"
	TableAPIRequests = "api_requests"

	ErrMsgInternalServerError = "Internal server error occurred"
)
