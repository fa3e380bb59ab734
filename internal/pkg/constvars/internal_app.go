package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_SESSION_ID_KEY ContextKey = "session_id"
	CONTEXT_SESSION_KEY    ContextKey = "session"
	CONTEXT_ROUTE_KEY      ContextKey = "route"
)

const (
	REQUEST_ID_PREFIX = "DRPRTL_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const AppName = "dr-portal"

// DefaultAllowedOrigin is the portal front end in local development.
const DefaultAllowedOrigin = "http://localhost:5173"
