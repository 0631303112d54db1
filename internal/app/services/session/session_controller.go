package session

import (
	"net/http"

	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/dto/responses"
	"carelink-agent/internal/pkg/utils"

	"go.uber.org/zap"
)

type SessionController struct {
	SessionStore SessionStore
	Log          *zap.Logger
}

func NewSessionController(sessionStore SessionStore, logger *zap.Logger) *SessionController {
	return &SessionController{
		SessionStore: sessionStore,
		Log:          logger,
	}
}

// Current reports the loaded session state. Rehydration runs first so
// the answer is correct even on the very first request after startup.
func (ctrl *SessionController) Current(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.SessionStore.Rehydrate(r.Context()); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	snapshot := ctrl.SessionStore.Snapshot()
	state := responses.SessionState{
		Identity:        snapshot.Identity,
		IsAuthenticated: snapshot.IsAuthenticated,
		HasCredential:   snapshot.Credential != "",
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "session state", state)
}
