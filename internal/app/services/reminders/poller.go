package reminders

import (
	"context"
	"sync"
	"time"

	"carelink-agent/internal/app/services/session"
	"carelink-agent/internal/app/services/shared/notify"

	"go.uber.org/zap"
)

// Poller periodically fetches upcoming reminders and raises a
// notification for every pending reminder scheduled inside the due
// window. Ticks are skipped while a previous tick is still running or
// while no identity is loaded, and a failing tick never stops the loop.
type Poller struct {
	usecase    ReminderUsecase
	session    session.SessionStore
	dispatcher notify.Dispatcher
	log        *zap.Logger

	interval time.Duration
	window   time.Duration
	now      func() time.Time

	busy     sync.Mutex
	notified map[int]bool
}

func NewPoller(
	usecase ReminderUsecase,
	sessionStore session.SessionStore,
	dispatcher notify.Dispatcher,
	interval time.Duration,
	window time.Duration,
	logger *zap.Logger,
) *Poller {
	return &Poller{
		usecase:    usecase,
		session:    sessionStore,
		dispatcher: dispatcher,
		log:        logger,
		interval:   interval,
		window:     window,
		now:        time.Now,
		notified:   make(map[int]bool),
	}
}

// Run blocks until ctx is cancelled. The first check fires immediately.
func (p *Poller) Run(ctx context.Context) {
	p.log.Info("reminderPoller.Run started",
		zap.Duration("interval", p.interval),
		zap.Duration("window", p.window),
	)

	p.Tick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info("reminderPoller.Run stopped")
			return
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}

// Tick runs a single check. Overlapping calls are dropped.
func (p *Poller) Tick(ctx context.Context) {
	if !p.busy.TryLock() {
		p.log.Debug("reminderPoller.Tick skipped, previous tick still running")
		return
	}
	defer p.busy.Unlock()

	// No identity: skip the tick instead of stopping the ticker, so a
	// later login resumes checks without restarting the loop.
	snapshot := p.session.Snapshot()
	if snapshot.Identity == nil {
		return
	}

	reminders, err := p.usecase.FetchUpcoming(ctx)
	if err != nil {
		p.log.Warn("reminderPoller.Tick fetch failed", zap.Error(err))
		return
	}

	now := p.now()
	due := make(map[int]bool, len(reminders))
	for i := range reminders {
		reminder := &reminders[i]
		if !reminder.DueWithin(now, p.window) {
			continue
		}
		due[reminder.ID] = true
		if p.notified[reminder.ID] {
			continue
		}
		p.notified[reminder.ID] = true
		p.dispatcher.Show(notify.NewReminderNotification(reminder.Title, reminder.Description))
		p.log.Info("reminderPoller.Tick raised notification",
			zap.Int("reminderID", reminder.ID),
			zap.String("scheduledAt", reminder.ScheduledAt),
		)
	}

	// Forget reminders that left the window so a rescheduled one can
	// notify again.
	for id := range p.notified {
		if !due[id] {
			delete(p.notified, id)
		}
	}
}
