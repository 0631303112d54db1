package navigation

import (
	"carelink-agent/internal/pkg/dto/responses"
	"context"
)

const (
	ActionNone     = "none"
	ActionRedirect = "redirect"
)

// Guard decides redirects between the login view and protected views,
// at most once per transition.
type Guard interface {
	Evaluate(ctx context.Context, currentView string) (*responses.NavigationDecision, error)
	Reset()
}
