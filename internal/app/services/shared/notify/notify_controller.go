package notify

import (
	"net/http"

	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/utils"

	"go.uber.org/zap"
)

type NotificationController struct {
	Dispatcher Dispatcher
	Log        *zap.Logger
}

func NewNotificationController(dispatcher Dispatcher, logger *zap.Logger) *NotificationController {
	return &NotificationController{
		Dispatcher: dispatcher,
		Log:        logger,
	}
}

// Pending drains the queue, so each notification is delivered to the
// rendering layer exactly once.
func (ctrl *NotificationController) Pending(w http.ResponseWriter, r *http.Request) {
	notifications := ctrl.Dispatcher.Drain()
	utils.BuildSuccessResponse(w, constvars.StatusOK, "pending notifications", notifications)
}
