package navigation

import (
	"carelink-agent/internal/app/services/session"
	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/dto/responses"
	"context"
	"sync"

	"go.uber.org/zap"
)

type navigationGuard struct {
	sessionStore session.SessionStore
	log          *zap.Logger

	mu    sync.Mutex
	fired map[string]bool
}

func NewNavigationGuard(sessionStore session.SessionStore, logger *zap.Logger) Guard {
	return &navigationGuard{
		sessionStore: sessionStore,
		log:          logger,
		fired:        make(map[string]bool),
	}
}

// Evaluate runs strictly after rehydration; Rehydrate is idempotent so
// calling it here costs nothing when startup already ran it. Partial
// session state is never authenticated, which is what keeps the
// redirect loop class of defect out: a credential without an identity
// can never bounce the viewer to the dashboard.
func (g *navigationGuard) Evaluate(ctx context.Context, currentView string) (*responses.NavigationDecision, error) {
	if err := g.sessionStore.Rehydrate(ctx); err != nil {
		return nil, err
	}

	snapshot := g.sessionStore.Snapshot()

	targetView := ""
	switch {
	case snapshot.IsAuthenticated && currentView == constvars.ViewLogin:
		targetView = constvars.ViewDashboard
	case !snapshot.IsAuthenticated && currentView != constvars.ViewLogin:
		targetView = constvars.ViewLogin
	}

	if targetView == "" {
		return &responses.NavigationDecision{Action: ActionNone}, nil
	}

	claimKey := currentView + "->" + targetView
	g.mu.Lock()
	alreadyFired := g.fired[claimKey]
	if !alreadyFired {
		g.fired[claimKey] = true
	}
	g.mu.Unlock()

	if alreadyFired {
		return &responses.NavigationDecision{Action: ActionNone}, nil
	}

	g.log.Info("navigationGuard.Evaluate redirect decided",
		zap.String(constvars.LoggingViewKey, currentView),
		zap.String(constvars.LoggingDecisionKey, targetView),
	)
	return &responses.NavigationDecision{Action: ActionRedirect, TargetView: targetView}, nil
}

// Reset releases the per-transition claims. Wired to session changes at
// bootstrap so a new login or logout starts a fresh transition.
func (g *navigationGuard) Reset() {
	g.mu.Lock()
	g.fired = make(map[string]bool)
	g.mu.Unlock()
}
