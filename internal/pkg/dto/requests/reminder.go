package requests

type CreateReminder struct {
	Title          string `json:"title" validate:"required,max=200"`
	Description    string `json:"description,omitempty"`
	ReminderType   string `json:"reminder_type,omitempty" validate:"omitempty,max=50"`
	ScheduledAt    string `json:"scheduled_at" validate:"required"`
	RepeatType     string `json:"repeat_type,omitempty" validate:"omitempty,oneof=none daily weekly monthly"`
	RepeatInterval int    `json:"repeat_interval,omitempty" validate:"omitempty,min=1"`
	EndDate        string `json:"end_date,omitempty"`
}

type UpdateReminder struct {
	Title          string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description    string `json:"description,omitempty"`
	ReminderType   string `json:"reminder_type,omitempty" validate:"omitempty,max=50"`
	ScheduledAt    string `json:"scheduled_at,omitempty"`
	IsCompleted    *bool  `json:"is_completed,omitempty"`
	RepeatType     string `json:"repeat_type,omitempty" validate:"omitempty,oneof=none daily weekly monthly"`
	RepeatInterval int    `json:"repeat_interval,omitempty" validate:"omitempty,min=1"`
	EndDate        string `json:"end_date,omitempty"`
}
