package healthdata

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

type HealthDataController struct {
	HealthDataUsecase HealthDataUsecase
	Log               *zap.Logger
}

func NewHealthDataController(healthDataUsecase HealthDataUsecase, logger *zap.Logger) *HealthDataController {
	return &HealthDataController{
		HealthDataUsecase: healthDataUsecase,
		Log:               logger,
	}
}

func (ctrl *HealthDataController) ListData(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &requests.HealthDataFilter{
		DataType:  query.Get("data_type"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	data, err := ctrl.HealthDataUsecase.FetchData(r.Context(), filter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "health data", data)
}

func (ctrl *HealthDataController) RecordData(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateHealthData)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	data, err := ctrl.HealthDataUsecase.RecordData(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, "health data recorded", data)
}

func (ctrl *HealthDataController) UpdateData(w http.ResponseWriter, r *http.Request) {
	dataID, err := healthPathID(r, "dataID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateHealthData)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	data, err := ctrl.HealthDataUsecase.UpdateData(r.Context(), dataID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "health data updated", data)
}

func (ctrl *HealthDataController) DeleteData(w http.ResponseWriter, r *http.Request) {
	dataID, err := healthPathID(r, "dataID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.HealthDataUsecase.DeleteData(r.Context(), dataID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "health data deleted", nil)
}

func (ctrl *HealthDataController) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := ctrl.HealthDataUsecase.FetchGoals(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "health goals", goals)
}

func (ctrl *HealthDataController) CreateGoal(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateHealthGoal)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	goal, err := ctrl.HealthDataUsecase.CreateGoal(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, "health goal created", goal)
}

func (ctrl *HealthDataController) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	goalID, err := healthPathID(r, "goalID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateHealthGoal)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	goal, err := ctrl.HealthDataUsecase.UpdateGoal(r.Context(), goalID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "health goal updated", goal)
}

func (ctrl *HealthDataController) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID, err := healthPathID(r, "goalID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.HealthDataUsecase.DeleteGoal(r.Context(), goalID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "health goal deleted", nil)
}

func healthPathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, exceptions.ErrInputValidation(err)
	}
	return id, nil
}
