package messaging

import (
	"carelink-agent/internal/app/models"
	"carelink-agent/internal/pkg/dto/requests"
	"context"
)

type MessagingService interface {
	// FetchUsers lists platform users, optionally filtered by role, for
	// picking a conversation partner.
	FetchUsers(ctx context.Context, role string) ([]models.Identity, error)
	FetchConversations(ctx context.Context) ([]models.Conversation, error)
	FetchConversation(ctx context.Context, conversationID int) (*models.Conversation, error)
	CreateConversation(ctx context.Context, request *requests.CreateConversation) (*models.Conversation, error)
	// FetchMessages loads the server-ordered sequence for a conversation
	// and replaces the view-scoped cache for it.
	FetchMessages(ctx context.Context, conversationID int) ([]models.Message, error)
	SendMessage(ctx context.Context, request *requests.CreateMessage) (*models.Message, error)
	UpdateMessage(ctx context.Context, messageID int, request *requests.UpdateMessage) (*models.Message, error)
	DeleteMessage(ctx context.Context, conversationID, messageID int) error
	// AppendLive appends an inbound live message in arrival order.
	AppendLive(message models.Message)
	CachedMessages(conversationID int) []models.Message
	// MarkMessageRead is idempotent; concurrent calls for the same id
	// collapse into at most one in-flight request.
	MarkMessageRead(ctx context.Context, conversationID, messageID int) error
	// MarkConversationRead batch-marks every cached unread message not
	// authored by the local identity, then refetches for the
	// server-authoritative read flags.
	MarkConversationRead(ctx context.Context, conversationID int) error
}
