package realtime

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"carelink-agent/internal/app/models"
	"carelink-agent/internal/app/services/session"
	"carelink-agent/internal/app/services/shared/notify"
	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	reconnectBaseDelay = time.Second
	reconnectMaxDelay  = 30 * time.Second
	markReadTimeout    = 10 * time.Second
)

type eventEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type conversationPayload struct {
	ConversationID int    `json:"conversation_id"`
	Content        string `json:"content,omitempty"`
}

type channelManager struct {
	url          string
	dialer       *websocket.Dialer
	sessionStore session.SessionStore
	messaging    MessageSink
	dispatcher   notify.Dispatcher
	log          *zap.Logger

	mu         sync.Mutex
	conn       *websocket.Conn
	joined     map[int]bool
	cancel     context.CancelFunc
	resyncSubs map[int]func()
	nextSubID  int
}

func NewChannelManager(
	url string,
	sessionStore session.SessionStore,
	messageSink MessageSink,
	dispatcher notify.Dispatcher,
	logger *zap.Logger,
) ChannelManager {
	return &channelManager{
		url:          url,
		dialer:       &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		sessionStore: sessionStore,
		messaging:    messageSink,
		dispatcher:   dispatcher,
		log:          logger,
		joined:       make(map[int]bool),
		resyncSubs:   make(map[int]func()),
	}
}

func (m *channelManager) Connect(ctx context.Context) error {
	m.log.Info("channelManager.Connect called", zap.String("url", m.url))

	conn, err := m.dial(ctx)
	if err != nil {
		return err
	}

	loopCtx, cancel := context.WithCancel(context.Background())

	m.mu.Lock()
	if m.conn != nil {
		m.mu.Unlock()
		cancel()
		_ = conn.Close()
		return nil
	}
	m.conn = conn
	m.cancel = cancel
	m.mu.Unlock()

	go m.readLoop(loopCtx, conn)
	return nil
}

func (m *channelManager) dial(ctx context.Context) (*websocket.Conn, error) {
	credential, found := m.sessionStore.ResolveCredential(ctx)
	if !found {
		return nil, exceptions.ErrRealtimeNoCredential()
	}

	header := http.Header{}
	if !strings.HasPrefix(credential, constvars.BearerSchemePrefix) {
		credential = constvars.BearerSchemePrefix + credential
	}
	header.Set(constvars.HeaderAuthorization, credential)

	conn, _, err := m.dialer.DialContext(ctx, m.url, header)
	if err != nil {
		return nil, exceptions.ErrRealtimeDial(err)
	}
	return conn, nil
}

func (m *channelManager) Disconnect() {
	m.mu.Lock()
	conn := m.conn
	cancel := m.cancel
	m.conn = nil
	m.cancel = nil
	m.joined = make(map[int]bool)
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.Close()
		m.log.Info("channelManager.Disconnect closed live channel")
	}
}

func (m *channelManager) JoinConversation(ctx context.Context, conversationID int) error {
	m.mu.Lock()
	m.joined[conversationID] = true
	conn := m.conn
	m.mu.Unlock()

	if conn == nil {
		return exceptions.ErrRealtimeNotConnected()
	}
	return m.writeEvent(conn, constvars.EventJoinConversation, conversationPayload{ConversationID: conversationID})
}

func (m *channelManager) LeaveConversation(ctx context.Context, conversationID int) error {
	m.mu.Lock()
	delete(m.joined, conversationID)
	conn := m.conn
	m.mu.Unlock()

	if conn == nil {
		return nil
	}
	return m.writeEvent(conn, constvars.EventLeaveConversation, conversationPayload{ConversationID: conversationID})
}

func (m *channelManager) SendMessage(ctx context.Context, conversationID int, content string) error {
	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()

	if conn == nil {
		return exceptions.ErrRealtimeNotConnected()
	}
	return m.writeEvent(conn, constvars.EventSendMessage, conversationPayload{
		ConversationID: conversationID,
		Content:        content,
	})
}

func (m *channelManager) OnResync(listener func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	m.resyncSubs[id] = listener
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.resyncSubs, id)
	}
}

func (m *channelManager) writeEvent(conn *websocket.Conn, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := conn.WriteJSON(eventEnvelope{Event: event, Data: data}); err != nil {
		return exceptions.ErrRealtimeWrite(err)
	}
	return nil
}

func (m *channelManager) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var envelope eventEnvelope
		if err := conn.ReadJSON(&envelope); err != nil {
			if ctx.Err() != nil {
				return
			}
			m.log.Warn("channelManager.readLoop connection lost", zap.Error(err))
			next, ok := m.reconnect(ctx)
			if !ok {
				return
			}
			conn = next
			continue
		}
		m.dispatch(envelope)
	}
}

func (m *channelManager) dispatch(envelope eventEnvelope) {
	switch envelope.Event {
	case constvars.EventNewMessage:
		m.handleNewMessage(envelope.Data)
	case constvars.EventJoined, constvars.EventLeft:
		m.log.Debug("channelManager.dispatch channel acknowledgement", zap.String("event", envelope.Event))
	case constvars.EventError:
		m.log.Warn("channelManager.dispatch server reported error", zap.ByteString("data", envelope.Data))
	default:
		m.log.Debug("channelManager.dispatch ignoring unknown event", zap.String("event", envelope.Event))
	}
}

func (m *channelManager) handleNewMessage(data json.RawMessage) {
	var message models.Message
	if err := json.Unmarshal(data, &message); err != nil {
		m.log.Warn("channelManager.handleNewMessage cannot parse payload", zap.Error(err))
		return
	}

	m.mu.Lock()
	joined := m.joined[message.ConversationID]
	m.mu.Unlock()
	if !joined {
		m.log.Debug("channelManager.handleNewMessage dropping event for un-joined conversation",
			zap.Int("conversationID", message.ConversationID),
		)
		return
	}

	m.messaging.AppendLive(message)

	snapshot := m.sessionStore.Snapshot()
	if snapshot.Identity != nil && message.UserID == snapshot.Identity.ID {
		return
	}

	sender := "Someone"
	if message.User != nil && message.User.Name != "" {
		sender = message.User.Name
	}
	m.dispatcher.Show(notify.NewMessageNotification(sender, message.Content))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), markReadTimeout)
		defer cancel()
		if err := m.messaging.MarkMessageRead(ctx, message.ConversationID, message.ID); err != nil {
			m.log.Warn("channelManager.handleNewMessage mark read failed",
				zap.Int("messageID", message.ID),
				zap.Error(err),
			)
		}
	}()
}

// reconnect keeps dialing with backoff until the context is cancelled or
// the credential disappears. On success it re-announces every joined
// conversation and wakes resync listeners so views can refetch what was
// missed while offline.
func (m *channelManager) reconnect(ctx context.Context) (*websocket.Conn, bool) {
	delay := reconnectBaseDelay
	for {
		select {
		case <-ctx.Done():
			return nil, false
		case <-time.After(delay):
		}

		if _, found := m.sessionStore.ResolveCredential(ctx); !found {
			m.log.Info("channelManager.reconnect stopping, no credential")
			m.Disconnect()
			return nil, false
		}

		conn, err := m.dial(ctx)
		if err != nil {
			m.log.Warn("channelManager.reconnect dial failed", zap.Error(err))
			delay *= 2
			if delay > reconnectMaxDelay {
				delay = reconnectMaxDelay
			}
			continue
		}

		m.mu.Lock()
		if m.cancel == nil {
			m.mu.Unlock()
			_ = conn.Close()
			return nil, false
		}
		m.conn = conn
		joined := make([]int, 0, len(m.joined))
		for conversationID := range m.joined {
			joined = append(joined, conversationID)
		}
		listeners := make([]func(), 0, len(m.resyncSubs))
		for _, listener := range m.resyncSubs {
			listeners = append(listeners, listener)
		}
		m.mu.Unlock()

		for _, conversationID := range joined {
			if err := m.writeEvent(conn, constvars.EventJoinConversation, conversationPayload{ConversationID: conversationID}); err != nil {
				m.log.Warn("channelManager.reconnect rejoin failed",
					zap.Int("conversationID", conversationID),
					zap.Error(err),
				)
			}
		}
		for _, listener := range listeners {
			listener()
		}

		m.log.Info("channelManager.reconnect live channel restored", zap.Int("rejoined", len(joined)))
		return conn, true
	}
}
