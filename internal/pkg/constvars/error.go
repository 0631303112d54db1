package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientNetworkUnavailable            = "cannot reach the server, please check your connection"
	ErrClientServerError                   = "the server had a problem handling your request"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevValidationFailed      = "validation failed"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevCannotMarshalJSON     = "cannot marshal JSON"
	ErrDevCreateHTTPRequest     = "failed to create HTTP request"
	ErrDevSendHTTPRequest       = "failed to send HTTP request"
	ErrDevReadResponseBody      = "failed to read response body"
	ErrDevInvalidCredentials    = "invalid credentials"
	ErrDevSessionExpired        = "session expired, credential rejected by the server"
	ErrDevNetworkUnavailable    = "transport failure, no response from the server"
	ErrDevServerError           = "server responded with an internal error"
	ErrDevUnexpectedStatusCode  = "unexpected status code: %d"
	ErrDevCredentialPersist     = "failed to persist credential record"
	ErrDevCredentialLoad        = "failed to load credential record"
	ErrDevCredentialClear       = "failed to clear credential record"
	ErrDevCredentialReadback    = "credential readback mismatch after persist"
	ErrDevRealtimeDial          = "failed to open realtime channel"
	ErrDevRealtimeWrite         = "failed to write realtime event"
	ErrDevRealtimeNotConnected  = "realtime channel is not connected"
	ErrDevRealtimeNoCredential  = "no credential resolved for realtime handshake"
	ErrDevOutboundRateLimited   = "outbound request rejected by the local rate limiter"
	ErrDevNotificationQueueFull = "notification queue full, dropping oldest entry"
)
