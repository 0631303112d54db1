package navigation

import (
	"net/http"

	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/dto/requests"
	"carelink-agent/internal/pkg/exceptions"
	"carelink-agent/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type NavigationController struct {
	Guard Guard
	Log   *zap.Logger
}

func NewNavigationController(guard Guard, logger *zap.Logger) *NavigationController {
	return &NavigationController{
		Guard: guard,
		Log:   logger,
	}
}

func (ctrl *NavigationController) Evaluate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.EvaluateNavigation)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	decision, err := ctrl.Guard.Evaluate(r.Context(), request.CurrentView)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "navigation evaluated", decision)
}
