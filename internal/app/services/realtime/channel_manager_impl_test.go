package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"carelink-agent/internal/app/models"
	"carelink-agent/internal/app/services/session"
	"carelink-agent/internal/app/services/shared/credstore"
	"carelink-agent/internal/app/services/shared/notify"
	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingSink struct {
	mu        sync.Mutex
	appended  []models.Message
	readMarks []int
}

func (s *recordingSink) AppendLive(message models.Message) {
	s.mu.Lock()
	s.appended = append(s.appended, message)
	s.mu.Unlock()
}

func (s *recordingSink) MarkMessageRead(ctx context.Context, conversationID, messageID int) error {
	s.mu.Lock()
	s.readMarks = append(s.readMarks, messageID)
	s.mu.Unlock()
	return nil
}

func (s *recordingSink) appendedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.appended)
}

type fakeRealtimeServer struct {
	server *httptest.Server

	mu       sync.Mutex
	conn     *websocket.Conn
	auth     string
	received []eventEnvelope
}

func newFakeRealtimeServer(t *testing.T) *fakeRealtimeServer {
	t.Helper()
	fake := &fakeRealtimeServer{}
	upgrader := websocket.Upgrader{}

	fake.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.mu.Lock()
		fake.auth = r.Header.Get(constvars.HeaderAuthorization)
		fake.mu.Unlock()

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		fake.mu.Lock()
		fake.conn = conn
		fake.mu.Unlock()

		for {
			var envelope eventEnvelope
			if err := conn.ReadJSON(&envelope); err != nil {
				return
			}
			fake.mu.Lock()
			fake.received = append(fake.received, envelope)
			fake.mu.Unlock()
		}
	}))
	t.Cleanup(fake.server.Close)
	return fake
}

func (f *fakeRealtimeServer) url() string {
	return "ws" + strings.TrimPrefix(f.server.URL, "http")
}

func (f *fakeRealtimeServer) push(t *testing.T, event string, payload interface{}) {
	t.Helper()
	data, err := json.Marshal(payload)
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.conn != nil
	}, time.Second, 10*time.Millisecond)

	f.mu.Lock()
	conn := f.conn
	f.mu.Unlock()
	assert.NoError(t, conn.WriteJSON(eventEnvelope{Event: event, Data: data}))
}

func (f *fakeRealtimeServer) receivedEvents() []eventEnvelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]eventEnvelope(nil), f.received...)
}

func newChannelManagerTest(t *testing.T, url string, authenticated bool) (ChannelManager, *recordingSink, notify.Dispatcher) {
	t.Helper()
	ctx := context.Background()

	store := credstore.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	sessionStore := session.NewSessionStore(store, zap.NewNop())
	if authenticated {
		assert.NoError(t, sessionStore.SetCredential(ctx, "live-token"))
		assert.NoError(t, sessionStore.SetIdentity(ctx, &models.Identity{ID: 1, Email: "pat@example.com", Name: "Pat", Role: models.RolePatient}))
	}

	sink := &recordingSink{}
	dispatcher := notify.NewDispatcher(10, zap.NewNop())
	manager := NewChannelManager(url, sessionStore, sink, dispatcher, zap.NewNop())
	return manager, sink, dispatcher
}

func TestChannelManager_ConnectRequiresCredential(t *testing.T) {
	fake := newFakeRealtimeServer(t)
	manager, _, _ := newChannelManagerTest(t, fake.url(), false)

	err := manager.Connect(context.Background())
	assert.Error(t, err)
	assert.Equal(t, exceptions.KindAuthRejected, exceptions.KindOf(err))
}

func TestChannelManager_ConnectSendsBearerHandshake(t *testing.T) {
	fake := newFakeRealtimeServer(t)
	manager, _, _ := newChannelManagerTest(t, fake.url(), true)
	defer manager.Disconnect()

	assert.NoError(t, manager.Connect(context.Background()))

	assert.Eventually(t, func() bool {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		return fake.auth == "Bearer live-token"
	}, time.Second, 10*time.Millisecond)
}

func TestChannelManager_JoinAnnouncedOnChannel(t *testing.T) {
	fake := newFakeRealtimeServer(t)
	manager, _, _ := newChannelManagerTest(t, fake.url(), true)
	defer manager.Disconnect()

	ctx := context.Background()
	assert.NoError(t, manager.Connect(ctx))
	assert.NoError(t, manager.JoinConversation(ctx, 7))

	assert.Eventually(t, func() bool {
		events := fake.receivedEvents()
		return len(events) == 1 && events[0].Event == constvars.EventJoinConversation
	}, time.Second, 10*time.Millisecond)
}

func TestChannelManager_JoinWithoutConnection(t *testing.T) {
	fake := newFakeRealtimeServer(t)
	manager, _, _ := newChannelManagerTest(t, fake.url(), true)

	err := manager.JoinConversation(context.Background(), 7)
	assert.Error(t, err)
	assert.True(t, exceptions.IsNetworkUnavailable(err))
}

func TestChannelManager_NewMessageDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("message for un-joined conversation is dropped", func(t *testing.T) {
		fake := newFakeRealtimeServer(t)
		manager, sink, _ := newChannelManagerTest(t, fake.url(), true)
		defer manager.Disconnect()

		assert.NoError(t, manager.Connect(ctx))
		assert.NoError(t, manager.JoinConversation(ctx, 1))

		fake.push(t, constvars.EventNewMessage, models.Message{ID: 5, ConversationID: 99, UserID: 2, Content: "hello"})

		// Follow with a joined-conversation message to prove the first
		// one was skipped rather than still in flight.
		fake.push(t, constvars.EventNewMessage, models.Message{ID: 6, ConversationID: 1, UserID: 2, Content: "hi"})

		assert.Eventually(t, func() bool { return sink.appendedCount() == 1 }, time.Second, 10*time.Millisecond)
		sink.mu.Lock()
		defer sink.mu.Unlock()
		assert.Equal(t, 6, sink.appended[0].ID)
	})

	t.Run("foreign message raises a notification and a read mark", func(t *testing.T) {
		fake := newFakeRealtimeServer(t)
		manager, sink, dispatcher := newChannelManagerTest(t, fake.url(), true)
		defer manager.Disconnect()

		assert.NoError(t, manager.Connect(ctx))
		assert.NoError(t, manager.JoinConversation(ctx, 1))

		fake.push(t, constvars.EventNewMessage, models.Message{
			ID: 7, ConversationID: 1, UserID: 2, Content: "checkup tomorrow",
			User: &models.Identity{ID: 2, Name: "Dr. Lee"},
		})

		assert.Eventually(t, func() bool {
			sink.mu.Lock()
			defer sink.mu.Unlock()
			return len(sink.readMarks) == 1 && sink.readMarks[0] == 7
		}, time.Second, 10*time.Millisecond)

		notifications := dispatcher.Drain()
		assert.Len(t, notifications, 1)
		assert.Equal(t, constvars.NotificationTagMessage, notifications[0].Tag)
		assert.Equal(t, "Dr. Lee: checkup tomorrow", notifications[0].Body)
	})

	t.Run("own message is appended silently", func(t *testing.T) {
		fake := newFakeRealtimeServer(t)
		manager, sink, dispatcher := newChannelManagerTest(t, fake.url(), true)
		defer manager.Disconnect()

		assert.NoError(t, manager.Connect(ctx))
		assert.NoError(t, manager.JoinConversation(ctx, 1))

		fake.push(t, constvars.EventNewMessage, models.Message{ID: 8, ConversationID: 1, UserID: 1, Content: "mine"})

		assert.Eventually(t, func() bool { return sink.appendedCount() == 1 }, time.Second, 10*time.Millisecond)
		assert.Empty(t, dispatcher.Drain())
		sink.mu.Lock()
		defer sink.mu.Unlock()
		assert.Empty(t, sink.readMarks)
	})
}

func TestChannelManager_SendMessage(t *testing.T) {
	fake := newFakeRealtimeServer(t)
	manager, _, _ := newChannelManagerTest(t, fake.url(), true)
	defer manager.Disconnect()

	ctx := context.Background()
	assert.NoError(t, manager.Connect(ctx))
	assert.NoError(t, manager.SendMessage(ctx, 3, "hello there"))

	assert.Eventually(t, func() bool {
		events := fake.receivedEvents()
		if len(events) != 1 || events[0].Event != constvars.EventSendMessage {
			return false
		}
		var payload conversationPayload
		if err := json.Unmarshal(events[0].Data, &payload); err != nil {
			return false
		}
		return payload.ConversationID == 3 && payload.Content == "hello there"
	}, time.Second, 10*time.Millisecond)
}

func TestChannelManager_DisconnectForgetsJoins(t *testing.T) {
	fake := newFakeRealtimeServer(t)
	manager, sink, _ := newChannelManagerTest(t, fake.url(), true)

	ctx := context.Background()
	assert.NoError(t, manager.Connect(ctx))
	assert.NoError(t, manager.JoinConversation(ctx, 1))
	manager.Disconnect()

	fake.mu.Lock()
	fake.conn = nil
	fake.mu.Unlock()

	assert.NoError(t, manager.Connect(ctx))
	defer manager.Disconnect()

	fake.push(t, constvars.EventNewMessage, models.Message{ID: 9, ConversationID: 1, UserID: 2, Content: "late"})

	// The join did not survive the teardown, so nothing lands.
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, sink.appendedCount())
}

func TestChannelManager_ReconnectRejoinsConversations(t *testing.T) {
	fake := newFakeRealtimeServer(t)
	manager, _, _ := newChannelManagerTest(t, fake.url(), true)
	defer manager.Disconnect()

	ctx := context.Background()
	assert.NoError(t, manager.Connect(ctx))
	assert.NoError(t, manager.JoinConversation(ctx, 7))
	assert.NoError(t, manager.JoinConversation(ctx, 9))

	var resyncMu sync.Mutex
	resyncs := 0
	unsubscribe := manager.OnResync(func() {
		resyncMu.Lock()
		resyncs++
		resyncMu.Unlock()
	})
	defer unsubscribe()

	assert.Eventually(t, func() bool {
		return len(fake.receivedEvents()) == 2
	}, time.Second, 10*time.Millisecond)

	// Drop the live connection server-side and let the backoff loop dial back.
	fake.mu.Lock()
	dropped := fake.conn
	fake.conn = nil
	fake.mu.Unlock()
	assert.NoError(t, dropped.Close())

	assert.Eventually(t, func() bool {
		joins := 0
		for _, event := range fake.receivedEvents() {
			if event.Event == constvars.EventJoinConversation {
				joins++
			}
		}
		return joins == 4
	}, 5*time.Second, 20*time.Millisecond, "both conversations should be announced again")

	resyncMu.Lock()
	fired := resyncs
	resyncMu.Unlock()
	assert.Equal(t, 1, fired, "views get exactly one refetch signal per restored channel")
}
