package credstore

import (
	"carelink-agent/internal/app/models"
	"context"
)

// Store is the durable home of the session record. Writes complete
// before the call returns, so a Load immediately after Save observes
// the saved record. Exactly one component writes at a time (the session
// store during set/clear, the rehydration reconciler during back-fill).
type Store interface {
	Save(ctx context.Context, record *models.Session) error
	Load(ctx context.Context) (*models.Session, bool, error)
	Clear(ctx context.Context) error
}
