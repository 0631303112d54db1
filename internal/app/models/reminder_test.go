package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminder_ScheduledTime(t *testing.T) {
	t.Run("parses RFC3339", func(t *testing.T) {
		r := Reminder{ScheduledAt: "2026-09-01T10:30:00Z"}
		parsed, err := r.ScheduledTime()
		assert.NoError(t, err)
		assert.Equal(t, 10, parsed.Hour())
	})

	t.Run("parses naive timestamps without a zone suffix", func(t *testing.T) {
		r := Reminder{ScheduledAt: "2026-09-01T10:30:00"}
		parsed, err := r.ScheduledTime()
		assert.NoError(t, err)
		assert.Equal(t, 30, parsed.Minute())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		r := Reminder{ScheduledAt: "soon"}
		_, err := r.ScheduledTime()
		assert.Error(t, err)
	})
}

func TestReminder_DueWithin(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	window := 5 * time.Minute

	reminderAt := func(offset time.Duration) Reminder {
		return Reminder{ScheduledAt: now.Add(offset).Format(time.RFC3339)}
	}

	t.Run("inside the window", func(t *testing.T) {
		r := reminderAt(4*time.Minute + 59*time.Second)
		assert.True(t, r.DueWithin(now, window))
	})

	t.Run("exactly now", func(t *testing.T) {
		r := reminderAt(0)
		assert.True(t, r.DueWithin(now, window))
	})

	t.Run("at the window boundary is excluded", func(t *testing.T) {
		r := reminderAt(5 * time.Minute)
		assert.False(t, r.DueWithin(now, window))
	})

	t.Run("past the window", func(t *testing.T) {
		r := reminderAt(6 * time.Minute)
		assert.False(t, r.DueWithin(now, window))
	})

	t.Run("already past due", func(t *testing.T) {
		r := reminderAt(-time.Minute)
		assert.False(t, r.DueWithin(now, window))
	})

	t.Run("completed reminders never fire", func(t *testing.T) {
		r := reminderAt(time.Minute)
		r.IsCompleted = true
		assert.False(t, r.DueWithin(now, window))
	})

	t.Run("unparseable schedule never fires", func(t *testing.T) {
		r := Reminder{ScheduledAt: "soon"}
		assert.False(t, r.DueWithin(now, window))
	})
}
