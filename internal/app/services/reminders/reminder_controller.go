package reminders

import (
	"net/http"
	"strconv"

	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/dto/requests"
	"carelink-agent/internal/pkg/exceptions"
	"carelink-agent/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReminderController struct {
	ReminderUsecase ReminderUsecase
	Log             *zap.Logger
}

func NewReminderController(reminderUsecase ReminderUsecase, logger *zap.Logger) *ReminderController {
	return &ReminderController{
		ReminderUsecase: reminderUsecase,
		Log:             logger,
	}
}

func (ctrl *ReminderController) List(w http.ResponseWriter, r *http.Request) {
	var (
		reminders interface{}
		err       error
	)
	if r.URL.Query().Get("upcoming_only") == "true" {
		reminders, err = ctrl.ReminderUsecase.FetchUpcoming(r.Context())
	} else {
		reminders, err = ctrl.ReminderUsecase.FetchAll(r.Context())
	}
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "reminders", reminders)
}

func (ctrl *ReminderController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateReminder)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	reminder, err := ctrl.ReminderUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, "reminder created", reminder)
}

func (ctrl *ReminderController) Update(w http.ResponseWriter, r *http.Request) {
	reminderID, err := reminderPathID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateReminder)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	reminder, err := ctrl.ReminderUsecase.Update(r.Context(), reminderID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "reminder updated", reminder)
}

func (ctrl *ReminderController) Complete(w http.ResponseWriter, r *http.Request) {
	reminderID, err := reminderPathID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	reminder, err := ctrl.ReminderUsecase.Complete(r.Context(), reminderID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "reminder completed", reminder)
}

func (ctrl *ReminderController) Delete(w http.ResponseWriter, r *http.Request) {
	reminderID, err := reminderPathID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.ReminderUsecase.Delete(r.Context(), reminderID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "reminder deleted", nil)
}

func reminderPathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "reminderID"))
	if err != nil {
		return 0, exceptions.ErrInputValidation(err)
	}
	return id, nil
}
