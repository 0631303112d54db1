package requests

type CreateMessage struct {
	ConversationID int    `json:"conversation_id" validate:"required"`
	Content        string `json:"content" validate:"required"`
}

type UpdateMessage struct {
	Content string `json:"content" validate:"required"`
}

type CreateConversation struct {
	PatientID  int `json:"patient_id" validate:"required"`
	ProviderID int `json:"provider_id" validate:"required"`
}
