package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Gin context keys set by the auth middleware.
	ContextKeyPrincipal = "principal"
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
)

// Table names.
const (
	TableOrganizations      = "organizations"
	TableServiceContracts   = "service_contracts"
	TableUsers              = "users"
	TableSessions           = "sessions"
	TableRobots             = "robots"
	TableMaintenanceLogs    = "maintenance_logs"
	TableTickets            = "tickets"
	TableTicketStages       = "ticket_stages"
	TableTicketIntervals    = "ticket_timeline_intervals"
	TableTicketComments     = "ticket_comments"
	TableTicketRatings      = "ticket_ratings"
	TableTimelineEvents     = "timeline_events"
	TableLibraryDocuments   = "library_documents"
	TableLibraryAttachments = "library_attachments"
	TableNotifications      = "notifications"
	TableFiles              = "files"
)
