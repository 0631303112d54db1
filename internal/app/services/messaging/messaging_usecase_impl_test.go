package messaging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"carelink-agent/internal/app/models"
	"carelink-agent/internal/app/services/session"
	"carelink-agent/internal/app/services/shared/apiclient"
	"carelink-agent/internal/app/services/shared/credstore"
	"carelink-agent/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newMessagingTest(t *testing.T, handler http.Handler) (MessagingService, session.SessionStore, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	ctx := context.Background()
	store := credstore.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	sessionStore := session.NewSessionStore(store, zap.NewNop())
	assert.NoError(t, sessionStore.SetCredential(ctx, "token"))
	assert.NoError(t, sessionStore.SetIdentity(ctx, &models.Identity{ID: 1, Email: "pat@example.com", Name: "Pat", Role: models.RolePatient}))

	coordinator := session.NewLogoutCoordinator(sessionStore, 5*time.Second, zap.NewNop())
	client := apiclient.NewApiClient(server.URL, 5*time.Second, 100, 100, sessionStore, coordinator, zap.NewNop())
	return NewMessagingService(client, sessionStore, zap.NewNop()), sessionStore, server
}

func TestMessagingService_FetchMessagesReplacesCache(t *testing.T) {
	ctx := context.Background()

	service, _, _ := newMessagingTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages/conversation/7", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Message{
			{ID: 1, ConversationID: 7, UserID: 2, Content: "hello", IsRead: true},
			{ID: 2, ConversationID: 7, UserID: 2, Content: "how are you"},
		})
	}))

	service.AppendLive(models.Message{ID: 99, ConversationID: 7, UserID: 2, Content: "stale"})

	messages, err := service.FetchMessages(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, messages, 2)

	cached := service.CachedMessages(7)
	assert.Len(t, cached, 2)
	assert.Equal(t, 1, cached[0].ID)
}

func TestMessagingService_MarkMessageRead(t *testing.T) {
	ctx := context.Background()

	t.Run("already read is a no-op with no request", func(t *testing.T) {
		var calls int32
		service, _, _ := newMessagingTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))

		service.AppendLive(models.Message{ID: 5, ConversationID: 1, UserID: 2, IsRead: true})

		assert.NoError(t, service.MarkMessageRead(ctx, 1, 5))
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("concurrent calls collapse into one in-flight request", func(t *testing.T) {
		var calls int32
		release := make(chan struct{})
		service, _, _ := newMessagingTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/messages/5/read", r.URL.Path)
			atomic.AddInt32(&calls, 1)
			<-release
		}))

		service.AppendLive(models.Message{ID: 5, ConversationID: 1, UserID: 2})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, service.MarkMessageRead(ctx, 1, 5))
		}()

		// Give the first call time to claim the in-flight slot.
		assert.Eventually(t, func() bool {
			return atomic.LoadInt32(&calls) == 1
		}, time.Second, 5*time.Millisecond)

		assert.NoError(t, service.MarkMessageRead(ctx, 1, 5))
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("server failure surfaces the error", func(t *testing.T) {
		service, _, _ := newMessagingTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		service.AppendLive(models.Message{ID: 8, ConversationID: 1, UserID: 2})
		assert.Error(t, service.MarkMessageRead(ctx, 1, 8))
	})
}

func TestMessagingService_MarkConversationRead(t *testing.T) {
	ctx := context.Background()

	var readCalls []string
	var mu sync.Mutex
	service, _, _ := newMessagingTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			mu.Lock()
			readCalls = append(readCalls, r.URL.Path)
			mu.Unlock()
			return
		}
		// Closing refetch returns server-authoritative flags.
		json.NewEncoder(w).Encode([]models.Message{
			{ID: 1, ConversationID: 3, UserID: 2, IsRead: true},
			{ID: 2, ConversationID: 3, UserID: 1, IsRead: false},
			{ID: 3, ConversationID: 3, UserID: 2, IsRead: true},
		})
	}))

	// Own unread message (id 2) must never be marked; foreign read
	// message (id 1) is already done.
	service.AppendLive(models.Message{ID: 1, ConversationID: 3, UserID: 2, IsRead: true})
	service.AppendLive(models.Message{ID: 2, ConversationID: 3, UserID: 1})
	service.AppendLive(models.Message{ID: 3, ConversationID: 3, UserID: 2})

	assert.NoError(t, service.MarkConversationRead(ctx, 3))
	assert.Equal(t, []string{"/messages/3/read"}, readCalls)

	cached := service.CachedMessages(3)
	assert.Len(t, cached, 3)
	assert.True(t, cached[2].IsRead)
}

func TestMessagingService_SendMessageAppendsToCache(t *testing.T) {
	ctx := context.Background()

	service, _, _ := newMessagingTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		json.NewEncoder(w).Encode(models.Message{ID: 10, ConversationID: 4, UserID: 1, Content: "sent"})
	}))

	message, err := service.SendMessage(ctx, &requests.CreateMessage{ConversationID: 4, Content: "sent"})
	assert.NoError(t, err)
	assert.Equal(t, 10, message.ID)

	cached := service.CachedMessages(4)
	assert.Len(t, cached, 1)
	assert.Equal(t, "sent", cached[0].Content)
}

func TestMessagingService_UpdateMessageCorrectsCacheInPlace(t *testing.T) {
	ctx := context.Background()

	service, _, _ := newMessagingTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/messages/2", r.URL.Path)
		json.NewEncoder(w).Encode(models.Message{ID: 2, ConversationID: 6, UserID: 1, Content: "corrected"})
	}))

	service.AppendLive(models.Message{ID: 1, ConversationID: 6, UserID: 2, Content: "first"})
	service.AppendLive(models.Message{ID: 2, ConversationID: 6, UserID: 1, Content: "typo"})
	service.AppendLive(models.Message{ID: 3, ConversationID: 6, UserID: 2, Content: "last"})

	message, err := service.UpdateMessage(ctx, 2, &requests.UpdateMessage{Content: "corrected"})
	assert.NoError(t, err)
	assert.Equal(t, "corrected", message.Content)

	// The correction lands on the cached entry without reordering.
	cached := service.CachedMessages(6)
	assert.Len(t, cached, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{cached[0].ID, cached[1].ID, cached[2].ID})
	assert.Equal(t, "corrected", cached[1].Content)
}

func TestMessagingService_DeleteMessageRemovesFromCache(t *testing.T) {
	ctx := context.Background()

	service, _, _ := newMessagingTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/messages/2", r.URL.Path)
	}))

	service.AppendLive(models.Message{ID: 1, ConversationID: 6, UserID: 2, Content: "keep"})
	service.AppendLive(models.Message{ID: 2, ConversationID: 6, UserID: 1, Content: "drop"})

	assert.NoError(t, service.DeleteMessage(ctx, 6, 2))

	cached := service.CachedMessages(6)
	assert.Len(t, cached, 1)
	assert.Equal(t, 1, cached[0].ID)
}

func TestMessagingService_FetchUsersFiltersByRole(t *testing.T) {
	ctx := context.Background()

	service, _, _ := newMessagingTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "provider", r.URL.Query().Get("role"))
		json.NewEncoder(w).Encode([]models.Identity{
			{ID: 2, Email: "lee@example.com", Name: "Dr. Lee", Role: models.RoleProvider},
		})
	}))

	users, err := service.FetchUsers(ctx, "provider")
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "Dr. Lee", users[0].Name)
}
