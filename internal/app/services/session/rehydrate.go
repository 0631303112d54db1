package session

import (
	"context"

	"go.uber.org/zap"
)

// Rehydrate merges the persisted record into the in-memory session. It
// runs once per process lifetime; the in-memory value wins when both
// sides hold a credential and they differ, because memory is always
// written after the persisted slot in this design. The persisted slot is
// back-filled when it lags the merged result.
func (s *sessionStore) Rehydrate(ctx context.Context) error {
	s.rehydrateOnce.Do(func() {
		s.rehydrateErr = s.rehydrate(ctx)
	})
	return s.rehydrateErr
}

func (s *sessionStore) rehydrate(ctx context.Context) error {
	s.mu.Lock()

	record, found, err := s.store.Load(ctx)
	if err != nil {
		s.mu.Unlock()
		s.log.Error("sessionStore.Rehydrate failed to load persisted record, continuing unauthenticated", zap.Error(err))
		return nil
	}

	backfill := false
	if found {
		if s.current.Credential == "" && record.Credential != "" {
			s.current.Credential = record.Credential
		} else if s.current.Credential != "" && s.current.Credential != record.Credential {
			backfill = true
		}
		if s.current.Identity == nil && record.Identity != nil {
			identity := *record.Identity
			s.current.Identity = &identity
		} else if s.current.Identity != nil && record.Identity == nil {
			backfill = true
		}
	} else if s.current.Credential != "" || s.current.Identity != nil {
		backfill = true
	}

	s.current.Recompute()

	if backfill {
		merged := s.current.Clone()
		if err := s.store.Save(ctx, &merged); err != nil {
			s.log.Error("sessionStore.Rehydrate failed to back-fill persisted record", zap.Error(err))
		}
	}

	snapshot, listeners := s.snapshotAndListenersLocked()
	s.mu.Unlock()

	s.log.Info("sessionStore.Rehydrate completed",
		zap.Bool("persisted_record_found", found),
		zap.Bool("is_authenticated", snapshot.IsAuthenticated),
	)
	s.notify(snapshot, listeners)
	return nil
}
