package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionDataKey    = "session_data"
	LoggingConversationIDKey = "conversation_id"
	LoggingMessageIDKey      = "message_id"
	LoggingReminderIDKey     = "reminder_id"
	LoggingViewKey           = "view"
	LoggingDecisionKey       = "decision"
	LoggingEndpointKey       = "endpoint"
	LoggingStatusCodeKey     = "status_code"
	LoggingResponseKey       = "response"
)

const (
	ResponseUnknown = "unknown"
)
