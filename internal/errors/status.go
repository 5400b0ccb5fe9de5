package errors

import (
	"context"
	"errors"
	"net/http"
)

var statusByCode = map[Code]int{
	CodeInvalidInput:        http.StatusBadRequest,
	CodeConfigValidation:    http.StatusBadRequest,
	CodeAlarmFileError:      http.StatusBadRequest,
	CodeResourceNotFound:    http.StatusNotFound,
	CodePlatformAuthError:   http.StatusForbidden,
	CodePlatformAPIError:    http.StatusBadGateway,
	CodePaginationExhausted: http.StatusBadGateway,
	CodeNotificationError:   http.StatusBadGateway,
	CodeTimeout:             http.StatusGatewayTimeout,
	CodeNotImplemented:      http.StatusNotImplemented,
}

// HTTPStatus maps an error to the response status used at the HTTP boundary.
// Errors that are not AppErrors are treated as internal failures, except for
// context deadlines which surface as gateway timeouts.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	if status, ok := statusByCode[GetCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
