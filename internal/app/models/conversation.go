package models

type Conversation struct {
	ID          int       `json:"id"`
	PatientID   int       `json:"patient_id"`
	ProviderID  int       `json:"provider_id"`
	Patient     *Identity `json:"patient,omitempty"`
	Provider    *Identity `json:"provider,omitempty"`
	UnreadCount int       `json:"unread_count,omitempty"`
	CreatedAt   string    `json:"created_at,omitempty"`
	UpdatedAt   string    `json:"updated_at,omitempty"`
}

type Message struct {
	ID             int       `json:"id"`
	ConversationID int       `json:"conversation_id"`
	UserID         int       `json:"user_id"`
	User           *Identity `json:"user,omitempty"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      string    `json:"created_at,omitempty"`
}
