package messaging

import (
	"carelink-agent/internal/app/models"
	"carelink-agent/internal/app/services/session"
	"carelink-agent/internal/app/services/shared/apiclient"
	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/dto/requests"
	"carelink-agent/internal/pkg/exceptions"
	"carelink-agent/internal/pkg/utils"
	"context"
	"fmt"
	"net/url"
	"sync"

	"go.uber.org/zap"
)

type messagingService struct {
	apiClient    apiclient.Client
	sessionStore session.SessionStore
	cache        *messageCache
	log          *zap.Logger

	inFlightMu sync.Mutex
	inFlight   map[int]struct{}
}

func NewMessagingService(apiClient apiclient.Client, sessionStore session.SessionStore, logger *zap.Logger) MessagingService {
	return &messagingService{
		apiClient:    apiClient,
		sessionStore: sessionStore,
		cache:        newMessageCache(),
		log:          logger,
		inFlight:     make(map[int]struct{}),
	}
}

func (svc *messagingService) FetchUsers(ctx context.Context, role string) ([]models.Identity, error) {
	path := constvars.EndpointUsers
	if role != "" {
		path += "?role=" + url.QueryEscape(role)
	}

	var users []models.Identity
	if err := svc.apiClient.Get(ctx, path, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (svc *messagingService) FetchConversations(ctx context.Context) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := svc.apiClient.Get(ctx, constvars.EndpointConversations, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

func (svc *messagingService) FetchConversation(ctx context.Context, conversationID int) (*models.Conversation, error) {
	conversation := new(models.Conversation)
	path := fmt.Sprintf("%s/%d", constvars.EndpointConversations, conversationID)
	if err := svc.apiClient.Get(ctx, path, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

func (svc *messagingService) CreateConversation(ctx context.Context, request *requests.CreateConversation) (*models.Conversation, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	conversation := new(models.Conversation)
	if err := svc.apiClient.Post(ctx, constvars.EndpointConversations, request, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

func (svc *messagingService) FetchMessages(ctx context.Context, conversationID int) ([]models.Message, error) {
	var messages []models.Message
	path := fmt.Sprintf("%s/conversation/%d", constvars.EndpointMessages, conversationID)
	if err := svc.apiClient.Get(ctx, path, &messages); err != nil {
		return nil, err
	}
	svc.cache.Replace(conversationID, messages)
	return messages, nil
}

func (svc *messagingService) SendMessage(ctx context.Context, request *requests.CreateMessage) (*models.Message, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	message := new(models.Message)
	if err := svc.apiClient.Post(ctx, constvars.EndpointMessages, request, message); err != nil {
		return nil, err
	}
	svc.cache.Append(*message)
	return message, nil
}

func (svc *messagingService) UpdateMessage(ctx context.Context, messageID int, request *requests.UpdateMessage) (*models.Message, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	message := new(models.Message)
	path := fmt.Sprintf("%s/%d", constvars.EndpointMessages, messageID)
	if err := svc.apiClient.Put(ctx, path, request, message); err != nil {
		return nil, err
	}
	svc.cache.ApplyCorrection(*message)
	return message, nil
}

func (svc *messagingService) DeleteMessage(ctx context.Context, conversationID, messageID int) error {
	path := fmt.Sprintf("%s/%d", constvars.EndpointMessages, messageID)
	if err := svc.apiClient.Delete(ctx, path); err != nil {
		return err
	}
	svc.cache.Remove(conversationID, messageID)
	return nil
}

func (svc *messagingService) AppendLive(message models.Message) {
	svc.cache.Append(message)
}

func (svc *messagingService) CachedMessages(conversationID int) []models.Message {
	return svc.cache.Messages(conversationID)
}

func (svc *messagingService) MarkMessageRead(ctx context.Context, conversationID, messageID int) error {
	if svc.cache.IsRead(conversationID, messageID) {
		return nil
	}

	svc.inFlightMu.Lock()
	if _, busy := svc.inFlight[messageID]; busy {
		svc.inFlightMu.Unlock()
		return nil
	}
	svc.inFlight[messageID] = struct{}{}
	svc.inFlightMu.Unlock()

	defer func() {
		svc.inFlightMu.Lock()
		delete(svc.inFlight, messageID)
		svc.inFlightMu.Unlock()
	}()

	path := fmt.Sprintf("%s/%d/read", constvars.EndpointMessages, messageID)
	if err := svc.apiClient.Put(ctx, path, nil, nil); err != nil {
		svc.log.Warn("messagingService.MarkMessageRead failed",
			zap.Int(constvars.LoggingMessageIDKey, messageID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// MarkConversationRead never mutates the cached read flags itself; the
// closing refetch brings back the server-authoritative flags, which is
// what keeps the cache from diverging from server truth.
func (svc *messagingService) MarkConversationRead(ctx context.Context, conversationID int) error {
	snapshot := svc.sessionStore.Snapshot()
	if snapshot.Identity == nil {
		return nil
	}

	ids := svc.cache.UnreadForeign(conversationID, snapshot.Identity.ID)
	if len(ids) == 0 {
		return nil
	}

	svc.log.Info("messagingService.MarkConversationRead marking",
		zap.Int(constvars.LoggingConversationIDKey, conversationID),
		zap.Int("count", len(ids)),
	)

	var firstErr error
	for _, messageID := range ids {
		if err := svc.MarkMessageRead(ctx, conversationID, messageID); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if _, err := svc.FetchMessages(ctx, conversationID); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
