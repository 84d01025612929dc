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
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeySessionID = "session_id"

	// User type labels (StatusUsuario reference data)
	UserTypeTI  = "TI"
	UserTypeUBS = "UBS"
	UserTypeLAB = "LAB"

	// Database table names
	TableUsers       = "usuarios"
	TableSessions    = "sessoes"
	TableTickets     = "chamados"
	TableTicketFiles = "chamado_arquivos"
	TableTicketTypes = "tipos_chamado"
	TableUserTypes   = "status_usuario"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
