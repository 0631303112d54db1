package notify

import (
	"carelink-agent/internal/pkg/constvars"
	"sync"
	"time"

	"go.uber.org/zap"
)

type dispatcher struct {
	log        *zap.Logger
	queueLimit int

	mu               sync.Mutex
	queue            []Notification
	subscribers      map[int]func(Notification)
	nextSubscriberID int
}

func NewDispatcher(queueLimit int, logger *zap.Logger) Dispatcher {
	return &dispatcher{
		log:         logger,
		queueLimit:  queueLimit,
		subscribers: make(map[int]func(Notification)),
	}
}

func (d *dispatcher) Show(notification Notification) {
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	d.mu.Lock()
	if len(d.queue) >= d.queueLimit {
		d.queue = d.queue[1:]
		d.log.Warn("dispatcher.Show " + constvars.ErrDevNotificationQueueFull)
	}
	d.queue = append(d.queue, notification)
	listeners := make([]func(Notification), 0, len(d.subscribers))
	for _, listener := range d.subscribers {
		listeners = append(listeners, listener)
	}
	d.mu.Unlock()

	d.log.Info("dispatcher.Show notification queued",
		zap.String("tag", notification.Tag),
		zap.String("title", notification.Title),
	)
	for _, listener := range listeners {
		listener(notification)
	}
}

func (d *dispatcher) Drain() []Notification {
	d.mu.Lock()
	drained := d.queue
	d.queue = nil
	d.mu.Unlock()
	return drained
}

func (d *dispatcher) Subscribe(listener func(Notification)) func() {
	d.mu.Lock()
	id := d.nextSubscriberID
	d.nextSubscriberID++
	d.subscribers[id] = listener
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.subscribers, id)
		d.mu.Unlock()
	}
}

// NewReminderNotification mirrors the platform's reminder notice shape.
func NewReminderNotification(title, body string) Notification {
	if body == "" {
		body = "It is time for your reminder"
	}
	return Notification{
		Title:              "Reminder: " + title,
		Body:               body,
		Tag:                constvars.NotificationTagReminder,
		RequireInteraction: true,
	}
}

// NewResyncNotification tells the rendering layer the live channel was
// restored and open conversations must be refetched; missed events are
// never replayed.
func NewResyncNotification() Notification {
	return Notification{
		Title: "Connection restored",
		Body:  "Refresh open conversations to catch up",
		Tag:   constvars.NotificationTagResync,
	}
}

// NewMessageNotification truncates the preview the way the platform UI
// expects.
func NewMessageNotification(sender, content string) Notification {
	preview := content
	if len(preview) > 50 {
		preview = preview[:50] + "..."
	}
	return Notification{
		Title: "New message",
		Body:  sender + ": " + preview,
		Tag:   constvars.NotificationTagMessage,
	}
}
