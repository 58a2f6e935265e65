package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Context keys set by the auth middleware
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
	ContextKeyUsername = "username"

	// FilterAll disables an equality filter on list endpoints
	FilterAll = "All"

	// Environments
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Table names
	TableUsers            = "users"
	TableTickets          = "tickets"
	TableTicketComments   = "ticket_comments"
	TableTicketCategories = "ticket_categories"
	TableAssets           = "assets"
	TableAssetHistory     = "asset_history"
	TableCategories       = "categories"
	TablePrintLogs        = "print_logs"
	TableToolPrintLogs    = "tool_print_logs"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
)
