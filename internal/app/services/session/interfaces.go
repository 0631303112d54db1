package session

import (
	"carelink-agent/internal/app/models"
	"context"
)

// SessionStore is the single writer of identity and credential state.
// Every other component only reads it.
type SessionStore interface {
	SetIdentity(ctx context.Context, identity *models.Identity) error
	SetCredential(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	Subscribe(listener func(models.Session)) func()
	Snapshot() models.Session
	// ResolveCredential resolves with in-memory first, then the
	// persisted record, back-filling memory on a fallback hit.
	ResolveCredential(ctx context.Context) (string, bool)
	// Rehydrate merges persisted and in-memory state once per process
	// lifetime. Re-running it is a no-op.
	Rehydrate(ctx context.Context) error
}
