package session

import (
	"carelink-agent/internal/app/models"
	"carelink-agent/internal/app/services/shared/credstore"
	"carelink-agent/internal/pkg/constvars"
	"context"
	"sync"

	"go.uber.org/zap"
)

type sessionStore struct {
	mu               sync.Mutex
	current          models.Session
	store            credstore.Store
	log              *zap.Logger
	subscribers      map[int]func(models.Session)
	nextSubscriberID int

	rehydrateOnce sync.Once
	rehydrateErr  error
}

func NewSessionStore(store credstore.Store, logger *zap.Logger) SessionStore {
	return &sessionStore{
		store:       store,
		log:         logger,
		subscribers: make(map[int]func(models.Session)),
	}
}

func (s *sessionStore) SetIdentity(ctx context.Context, identity *models.Identity) error {
	s.mu.Lock()
	s.current.Identity = identity
	s.current.Recompute()

	record := s.current.Clone()
	if err := s.store.Save(ctx, &record); err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot, listeners := s.snapshotAndListenersLocked()
	s.mu.Unlock()

	s.notify(snapshot, listeners)
	return nil
}

func (s *sessionStore) SetCredential(ctx context.Context, token string) error {
	s.mu.Lock()
	record := s.current.Clone()
	record.Credential = token
	record.Recompute()

	if err := s.persistWithReadbackLocked(ctx, &record); err != nil {
		s.mu.Unlock()
		return err
	}

	s.current.Credential = token
	s.current.Recompute()
	snapshot, listeners := s.snapshotAndListenersLocked()
	s.mu.Unlock()

	s.notify(snapshot, listeners)
	return nil
}

func (s *sessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	if err := s.store.Clear(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	s.current = models.Session{}
	snapshot, listeners := s.snapshotAndListenersLocked()
	s.mu.Unlock()

	s.log.Info("sessionStore.Clear session cleared")
	s.notify(snapshot, listeners)
	return nil
}

func (s *sessionStore) Subscribe(listener func(models.Session)) func() {
	s.mu.Lock()
	id := s.nextSubscriberID
	s.nextSubscriberID++
	s.subscribers[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *sessionStore) Snapshot() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

func (s *sessionStore) ResolveCredential(ctx context.Context) (string, bool) {
	s.mu.Lock()
	if s.current.Credential != "" {
		credential := s.current.Credential
		s.mu.Unlock()
		return credential, true
	}

	record, found, err := s.store.Load(ctx)
	if err != nil {
		s.mu.Unlock()
		s.log.Error("sessionStore.ResolveCredential failed to load persisted record", zap.Error(err))
		return "", false
	}
	if !found || record.Credential == "" {
		s.mu.Unlock()
		return "", false
	}

	// Fallback hit, back-fill the in-memory copy.
	s.current.Credential = record.Credential
	s.current.Recompute()
	credential := s.current.Credential
	snapshot, listeners := s.snapshotAndListenersLocked()
	s.mu.Unlock()

	s.log.Info("sessionStore.ResolveCredential back-filled credential from persisted record")
	s.notify(snapshot, listeners)
	return credential, true
}

// persistWithReadbackLocked saves the record and verifies the persisted
// copy matches. The store write is synchronous, so a mismatch means the
// slot is being corrupted by something else; retry a bounded number of
// times, then keep running with a degraded-consistency warning.
func (s *sessionStore) persistWithReadbackLocked(ctx context.Context, record *models.Session) error {
	var lastErr error
	for attempt := 1; attempt <= constvars.CredentialSaveRetries; attempt++ {
		if err := s.store.Save(ctx, record); err != nil {
			lastErr = err
			continue
		}
		persisted, found, err := s.store.Load(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		if found && persisted.Credential == record.Credential {
			return nil
		}
		s.log.Warn("sessionStore.persistWithReadback readback mismatch, retrying",
			zap.Int("attempt", attempt),
		)
	}
	if lastErr != nil {
		return lastErr
	}
	s.log.Warn("sessionStore.persistWithReadback degraded consistency: persisted credential still differs after retries")
	return nil
}

func (s *sessionStore) snapshotAndListenersLocked() (models.Session, []func(models.Session)) {
	snapshot := s.current.Clone()
	listeners := make([]func(models.Session), 0, len(s.subscribers))
	for _, listener := range s.subscribers {
		listeners = append(listeners, listener)
	}
	return snapshot, listeners
}

func (s *sessionStore) notify(snapshot models.Session, listeners []func(models.Session)) {
	for _, listener := range listeners {
		listener(snapshot)
	}
}
