package session

import (
	"context"
	"path/filepath"
	"testing"

	"carelink-agent/internal/app/models"
	"carelink-agent/internal/app/services/shared/credstore"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestSessionStore(t *testing.T) (SessionStore, credstore.Store) {
	t.Helper()
	store := credstore.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	return NewSessionStore(store, zap.NewNop()), store
}

func testIdentity() *models.Identity {
	return &models.Identity{ID: 1, Email: "pat@example.com", Name: "Pat", Role: models.RolePatient}
}

func TestSessionStore_AuthenticatedInvariant(t *testing.T) {
	ctx := context.Background()

	t.Run("credential alone is not authenticated", func(t *testing.T) {
		sessionStore, _ := newTestSessionStore(t)
		assert.NoError(t, sessionStore.SetCredential(ctx, "token"))

		snapshot := sessionStore.Snapshot()
		assert.False(t, snapshot.IsAuthenticated)
	})

	t.Run("identity alone is not authenticated", func(t *testing.T) {
		sessionStore, _ := newTestSessionStore(t)
		assert.NoError(t, sessionStore.SetIdentity(ctx, testIdentity()))

		snapshot := sessionStore.Snapshot()
		assert.False(t, snapshot.IsAuthenticated)
	})

	t.Run("both present is authenticated", func(t *testing.T) {
		sessionStore, _ := newTestSessionStore(t)
		assert.NoError(t, sessionStore.SetCredential(ctx, "token"))
		assert.NoError(t, sessionStore.SetIdentity(ctx, testIdentity()))

		snapshot := sessionStore.Snapshot()
		assert.True(t, snapshot.IsAuthenticated)
	})

	t.Run("clear drops everything atomically", func(t *testing.T) {
		sessionStore, _ := newTestSessionStore(t)
		assert.NoError(t, sessionStore.SetCredential(ctx, "token"))
		assert.NoError(t, sessionStore.SetIdentity(ctx, testIdentity()))
		assert.NoError(t, sessionStore.Clear(ctx))

		snapshot := sessionStore.Snapshot()
		assert.False(t, snapshot.IsAuthenticated)
		assert.Empty(t, snapshot.Credential)
		assert.Nil(t, snapshot.Identity)
	})

	t.Run("removing identity flips the flag back", func(t *testing.T) {
		sessionStore, _ := newTestSessionStore(t)
		assert.NoError(t, sessionStore.SetCredential(ctx, "token"))
		assert.NoError(t, sessionStore.SetIdentity(ctx, testIdentity()))
		assert.NoError(t, sessionStore.SetIdentity(ctx, nil))

		assert.False(t, sessionStore.Snapshot().IsAuthenticated)
	})
}

func TestSessionStore_SetCredentialPersistsBeforeMemory(t *testing.T) {
	ctx := context.Background()
	sessionStore, store := newTestSessionStore(t)

	assert.NoError(t, sessionStore.SetCredential(ctx, "token-xyz"))

	persisted, found, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "token-xyz", persisted.Credential)
	assert.Equal(t, "token-xyz", sessionStore.Snapshot().Credential)
}

func TestSessionStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	sessionStore, _ := newTestSessionStore(t)

	var seen []models.Session
	unsubscribe := sessionStore.Subscribe(func(s models.Session) {
		seen = append(seen, s)
	})

	assert.NoError(t, sessionStore.SetCredential(ctx, "token"))
	assert.NoError(t, sessionStore.SetIdentity(ctx, testIdentity()))
	assert.Len(t, seen, 2)
	assert.True(t, seen[1].IsAuthenticated)

	unsubscribe()
	assert.NoError(t, sessionStore.Clear(ctx))
	assert.Len(t, seen, 2)
}

func TestSessionStore_ResolveCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves from memory first", func(t *testing.T) {
		sessionStore, _ := newTestSessionStore(t)
		assert.NoError(t, sessionStore.SetCredential(ctx, "mem-token"))

		credential, found := sessionStore.ResolveCredential(ctx)
		assert.True(t, found)
		assert.Equal(t, "mem-token", credential)
	})

	t.Run("falls back to persisted record and back-fills memory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		store := credstore.NewFileStore(path)
		assert.NoError(t, store.Save(ctx, &models.Session{Credential: "disk-token"}))

		sessionStore := NewSessionStore(store, zap.NewNop())

		credential, found := sessionStore.ResolveCredential(ctx)
		assert.True(t, found)
		assert.Equal(t, "disk-token", credential)
		assert.Equal(t, "disk-token", sessionStore.Snapshot().Credential)
	})

	t.Run("reports absence when neither side has a credential", func(t *testing.T) {
		sessionStore, _ := newTestSessionStore(t)

		_, found := sessionStore.ResolveCredential(ctx)
		assert.False(t, found)
	})
}

func TestSessionStore_Rehydrate(t *testing.T) {
	ctx := context.Background()

	t.Run("restores persisted session", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		store := credstore.NewFileStore(path)
		record := &models.Session{Credential: "disk-token", Identity: testIdentity()}
		record.Recompute()
		assert.NoError(t, store.Save(ctx, record))

		sessionStore := NewSessionStore(store, zap.NewNop())
		assert.NoError(t, sessionStore.Rehydrate(ctx))

		snapshot := sessionStore.Snapshot()
		assert.True(t, snapshot.IsAuthenticated)
		assert.Equal(t, "disk-token", snapshot.Credential)
		assert.Equal(t, 1, snapshot.Identity.ID)
	})

	t.Run("runs exactly once", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		store := credstore.NewFileStore(path)
		assert.NoError(t, store.Save(ctx, &models.Session{Credential: "first"}))

		sessionStore := NewSessionStore(store, zap.NewNop())
		assert.NoError(t, sessionStore.Rehydrate(ctx))

		// A later change to the persisted slot must not leak in through a
		// second rehydration.
		assert.NoError(t, store.Save(ctx, &models.Session{Credential: "second"}))
		assert.NoError(t, sessionStore.Rehydrate(ctx))
		assert.Equal(t, "first", sessionStore.Snapshot().Credential)
	})

	t.Run("in-memory credential wins on divergence and back-fills the slot", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		store := credstore.NewFileStore(path)

		sessionStore := NewSessionStore(store, zap.NewNop())
		assert.NoError(t, sessionStore.SetCredential(ctx, "fresh"))
		// Another writer corrupts the slot behind the store's back.
		assert.NoError(t, store.Save(ctx, &models.Session{Credential: "stale"}))
		assert.NoError(t, sessionStore.Rehydrate(ctx))

		assert.Equal(t, "fresh", sessionStore.Snapshot().Credential)
		persisted, found, err := store.Load(ctx)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "fresh", persisted.Credential)
	})

	t.Run("missing record leaves the session unauthenticated", func(t *testing.T) {
		sessionStore, _ := newTestSessionStore(t)
		assert.NoError(t, sessionStore.Rehydrate(ctx))
		assert.False(t, sessionStore.Snapshot().IsAuthenticated)
	})
}
