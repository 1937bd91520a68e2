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

	// Context keys set by the auth middleware
	ContextKeySubject   = "auth_subject"
	ContextKeyEmail     = "auth_email"
	ContextKeyFullName  = "auth_full_name"
	ContextKeyProfile   = "profile"
	ContextKeyRequestID = "request_id"

	// Activity log actions
	ActivityCreated         = "created"
	ActivityStatusChanged   = "status_changed"
	ActivityPriorityChanged = "priority_changed"
	ActivityAssigned        = "assigned"
	ActivityCommented       = "commented"
	ActivityUpdated         = "updated"

	// ActivityValueMaxLen caps old/new values stored in the activity log;
	// comment messages are truncated to this length.
	ActivityValueMaxLen = 120
)
