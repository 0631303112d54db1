package exceptions

import (
	"carelink-agent/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

// Kind classifies errors into the taxonomy the agent acts on.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindAuthRejected       Kind = "auth_rejected"
	KindSessionExpired     Kind = "session_expired"
	KindNetworkUnavailable Kind = "network_unavailable"
	KindServerError        Kind = "server_error"
	KindInternal           Kind = "internal"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Kind          Kind     `json:"kind"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func WrapWithoutError(statusCode int, kind Kind, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func WrapWithError(err error, statusCode int, kind Kind, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Location:      location,
	}
}

// BuildNewCustomError is the constructor used by the taxonomy helpers in
// types.go; it skips one extra frame so the location points at the caller
// of the helper.
func BuildNewCustomError(err error, statusCode int, kind Kind, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	devText := devMessage
	if err != nil {
		devText = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devText,
		Location:      location,
	}
}

func KindOf(err error) Kind {
	var customError *CustomError
	if errors.As(err, &customError) {
		return customError.Kind
	}
	return KindInternal
}

func IsSessionExpired(err error) bool {
	return KindOf(err) == KindSessionExpired
}

func IsAuthRejected(err error) bool {
	return KindOf(err) == KindAuthRejected
}

func IsNetworkUnavailable(err error) bool {
	return KindOf(err) == KindNetworkUnavailable
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
