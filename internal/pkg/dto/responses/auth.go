package responses

import "carelink-agent/internal/app/models"

type AuthToken struct {
	AccessToken string           `json:"access_token"`
	User        *models.Identity `json:"user"`
}

type SessionState struct {
	Identity        *models.Identity `json:"user,omitempty"`
	IsAuthenticated bool             `json:"is_authenticated"`
	HasCredential   bool             `json:"has_credential"`
}

type NavigationDecision struct {
	Action     string `json:"action"`
	TargetView string `json:"target_view,omitempty"`
}
