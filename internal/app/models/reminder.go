package models

import "time"

type Reminder struct {
	ID             int    `json:"id"`
	UserID         int    `json:"user_id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	ReminderType   string `json:"reminder_type,omitempty"`
	ScheduledAt    string `json:"scheduled_at"`
	IsCompleted    bool   `json:"is_completed"`
	RepeatType     string `json:"repeat_type,omitempty"`
	RepeatInterval int    `json:"repeat_interval,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// ScheduledTime parses the server's ISO-8601 scheduled_at value. The
// server emits naive UTC timestamps without a zone suffix.
func (r *Reminder) ScheduledTime() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, r.ScheduledAt); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", r.ScheduledAt)
}

// DueWithin reports whether the reminder falls inside [now, now+window)
// and is still pending.
func (r *Reminder) DueWithin(now time.Time, window time.Duration) bool {
	if r.IsCompleted {
		return false
	}
	scheduledAt, err := r.ScheduledTime()
	if err != nil {
		return false
	}
	return !scheduledAt.Before(now) && scheduledAt.Before(now.Add(window))
}
