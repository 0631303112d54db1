package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	REQUEST_ID_PREFIX = "CRLNK_AGT_"
)

// Platform API endpoints consumed by the agent.
const (
	EndpointAuthLogin         = "/auth/login"
	EndpointAuthRegister      = "/auth/register"
	EndpointAuthMe            = "/auth/me"
	EndpointAuthUpdateProfile = "/auth/update-profile"
	EndpointUsers             = "/users"
	EndpointConversations     = "/conversations"
	EndpointMessages          = "/messages"
	EndpointReminders         = "/reminders"
	EndpointHealthData        = "/health-data"
	EndpointHealthGoals       = "/health-goals"
	EndpointRealtime          = "/socket"
)

// Realtime channel event names.
const (
	EventJoinConversation  = "join_conversation"
	EventLeaveConversation = "leave_conversation"
	EventSendMessage       = "send_message"
	EventNewMessage        = "new_message"
	EventJoined            = "joined"
	EventLeft              = "left"
	EventError             = "error"
)

// Notification tags. Tags classify notifications for the rendering
// layer, they never suppress delivery.
const (
	NotificationTagReminder = "reminder"
	NotificationTagMessage  = "message"
	NotificationTagResync   = "resync"
)

// Views the navigation guard decides between.
const (
	ViewLogin     = "login"
	ViewDashboard = "dashboard"
)

const (
	ReminderPollInterval   = 60
	ReminderDueWindowInMin = 5
	LogoutCooldownInSec    = 5
	CredentialSaveRetries  = 3
)
