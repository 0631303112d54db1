package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// LogoutCoordinator owns the at-most-once logout decision. It replaces
// the ad hoc "redirect in progress" flags of earlier designs with an
// explicitly owned, process-scoped claim: the first failing caller
// inside the cooldown window clears the session and runs the logout
// hooks, every other caller no-ops. Reset on fresh login.
type LogoutCoordinator struct {
	store    SessionStore
	log      *zap.Logger
	cooldown time.Duration

	mu        sync.Mutex
	lastClaim time.Time
	hooks     []func(context.Context)
}

func NewLogoutCoordinator(store SessionStore, cooldown time.Duration, logger *zap.Logger) *LogoutCoordinator {
	return &LogoutCoordinator{
		store:    store,
		log:      logger,
		cooldown: cooldown,
	}
}

// OnLogout registers a hook run after the session is cleared. Hooks are
// registered once at bootstrap, before any request flows.
func (c *LogoutCoordinator) OnLogout(hook func(context.Context)) {
	c.mu.Lock()
	c.hooks = append(c.hooks, hook)
	c.mu.Unlock()
}

// TriggerSessionExpiry claims the logout if no other caller holds the
// claim inside the cooldown window. Returns whether this caller
// performed the clear.
func (c *LogoutCoordinator) TriggerSessionExpiry(ctx context.Context) bool {
	c.mu.Lock()
	now := time.Now()
	if now.Sub(c.lastClaim) < c.cooldown {
		c.mu.Unlock()
		return false
	}
	c.lastClaim = now
	hooks := make([]func(context.Context), len(c.hooks))
	copy(hooks, c.hooks)
	c.mu.Unlock()

	c.log.Info("logoutCoordinator.TriggerSessionExpiry claimed, clearing session")
	if err := c.store.Clear(ctx); err != nil {
		c.log.Error("logoutCoordinator.TriggerSessionExpiry failed to clear session", zap.Error(err))
	}
	for _, hook := range hooks {
		hook(ctx)
	}
	return true
}

// ForceLogout is the user-initiated path: always clears, always runs
// the hooks, no claim needed.
func (c *LogoutCoordinator) ForceLogout(ctx context.Context) error {
	c.mu.Lock()
	hooks := make([]func(context.Context), len(c.hooks))
	copy(hooks, c.hooks)
	c.mu.Unlock()

	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	for _, hook := range hooks {
		hook(ctx)
	}
	c.Reset()
	return nil
}

// Reset releases the claim so the next expiry can fire immediately.
func (c *LogoutCoordinator) Reset() {
	c.mu.Lock()
	c.lastClaim = time.Time{}
	c.mu.Unlock()
}
