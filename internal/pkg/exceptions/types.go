package exceptions

import (
	"carelink-agent/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrNetworkUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, KindNetworkUnavailable, constvars.ErrClientNetworkUnavailable, constvars.ErrDevNetworkUnavailable)
	}
	ErrAuthRejected = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, KindAuthRejected, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrSessionExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, KindSessionExpired, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionExpired)
	}
	ErrServerError = func(err error, statusCode int) *CustomError {
		return BuildNewCustomError(err, statusCode, KindServerError, constvars.ErrClientServerError, constvars.ErrDevServerError)
	}
	ErrUnexpectedStatusCode = func(statusCode int) *CustomError {
		return BuildNewCustomError(nil, statusCode, KindServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnexpectedStatusCode, statusCode))
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevReadResponseBody)
	}
	ErrCredentialPersist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCredentialPersist)
	}
	ErrCredentialLoad = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCredentialLoad)
	}
	ErrCredentialClear = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCredentialClear)
	}
	ErrRealtimeDial = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, KindNetworkUnavailable, constvars.ErrClientNetworkUnavailable, constvars.ErrDevRealtimeDial)
	}
	ErrRealtimeWrite = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, KindNetworkUnavailable, constvars.ErrClientNetworkUnavailable, constvars.ErrDevRealtimeWrite)
	}
	ErrRealtimeNotConnected = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusServiceUnavailable, KindNetworkUnavailable, constvars.ErrClientNetworkUnavailable, constvars.ErrDevRealtimeNotConnected)
	}
	ErrRealtimeNoCredential = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, KindAuthRejected, constvars.ErrClientNotLoggedIn, constvars.ErrDevRealtimeNoCredential)
	}
	ErrOutboundRateLimited = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, KindInternal, constvars.ErrClientServerLongRespond, constvars.ErrDevOutboundRateLimited)
	}
)
