package utils

import (
	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/dto/responses"
	"carelink-agent/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	var customError *exceptions.CustomError
	if !errors.As(err, &customError) {
		customError = exceptions.WrapWithError(err, constvars.StatusInternalServerError, exceptions.KindInternal, constvars.ErrClientSomethingWrongWithApplication, err.Error())
	}

	log.Error("request failed",
		zap.Int(constvars.LoggingStatusCodeKey, customError.StatusCode),
		zap.String("kind", string(customError.Kind)),
		zap.String("dev_message", customError.DevMessage),
	)

	response := responses.ResponseDTO{
		Success: false,
		Message: customError.ClientMessage,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(customError.StatusCode)
	json.NewEncoder(w).Encode(response)
}
