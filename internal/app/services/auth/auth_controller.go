package auth

import (
	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/dto/requests"
	"carelink-agent/internal/pkg/exceptions"
	"carelink-agent/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthUsecase AuthUsecase
	Log         *zap.Logger
}

func NewAuthController(authUsecase AuthUsecase, logger *zap.Logger) *AuthController {
	return &AuthController{
		AuthUsecase: authUsecase,
		Log:         logger,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LoginUser)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	identity, err := ctrl.AuthUsecase.Login(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "logged in", identity)
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterUser)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	identity, err := ctrl.AuthUsecase.Register(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, "registered", identity)
}

func (ctrl *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateProfile)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	identity, err := ctrl.AuthUsecase.UpdateProfile(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "profile updated", identity)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.AuthUsecase.Logout(r.Context()); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "logged out", nil)
}
