package notify

import "time"

// Notification is a user-facing, time-boxed, dismissible notice. Tags
// classify notifications for the rendering layer, they never suppress
// delivery.
type Notification struct {
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	Tag                string    `json:"tag"`
	RequireInteraction bool      `json:"require_interaction"`
	CreatedAt          time.Time `json:"created_at"`
}

type Dispatcher interface {
	Show(notification Notification)
	// Drain returns and removes every queued notification, oldest first.
	Drain() []Notification
	Subscribe(listener func(Notification)) func()
}
