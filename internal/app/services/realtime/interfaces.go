package realtime

import (
	"context"

	"carelink-agent/internal/app/models"
)

// MessageSink receives inbound live messages. Implemented by the
// messaging service's view-scoped cache.
type MessageSink interface {
	AppendLive(message models.Message)
	MarkMessageRead(ctx context.Context, conversationID, messageID int) error
}

// ChannelManager owns the live event connection. It only connects with
// a resolved credential, announces joins per viewed conversation, and
// re-announces every join after a reconnect. Missed events are not
// replayed; resync listeners tell the owning view to refetch.
type ChannelManager interface {
	Connect(ctx context.Context) error
	Disconnect()
	JoinConversation(ctx context.Context, conversationID int) error
	LeaveConversation(ctx context.Context, conversationID int) error
	SendMessage(ctx context.Context, conversationID int, content string) error
	OnResync(listener func()) func()
}
