package constants

// Viper configuration keys.
const (
	ViperAPIBaseURL   = "api.base_url"
	ViperHTTPTimeout  = "api.timeout"
	ViperPollInterval = "poll.interval"
	ViperSessionPath  = "session.path"
	ViperMockAddr     = "mockapi.addr"
	ViperJWTSecret    = "mockapi.jwt_secret"
)

const (
	UserTypeUser  = "user"
	UserTypeAdmin = "admin"
)

const (
	HeaderRequestID = "X-Request-ID"
)
