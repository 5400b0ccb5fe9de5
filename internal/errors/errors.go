package errors

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type AppError struct {
	Code            Code
	Message         string
	InternalDetails string
	IsUserFacing    bool
	SuggestedAction string
	WrappedError    error
	StackTrace      string
}

func (e *AppError) Error() string {
	if e.WrappedError != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.WrappedError)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.WrappedError
}

func New(code Code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StackTrace: string(debug.Stack()),
	}
}

func NewUserFacing(code Code, message string, suggestion string) *AppError {
	return &AppError{
		Code:            code,
		Message:         message,
		IsUserFacing:    true,
		SuggestedAction: suggestion,
		StackTrace:      string(debug.Stack()),
	}
}

// InvalidInput reports a missing or malformed caller argument. It is always
// user facing and is raised before any remote call is made.
func InvalidInput(message string) *AppError {
	return NewUserFacing(CodeInvalidInput, message, "")
}

// Wrap attaches a code and message to err. An error that already carries an
// AppError is returned unchanged so the innermost classification wins.
func Wrap(err error, code Code, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return &AppError{
		Code:         code,
		Message:      message,
		WrappedError: err,
		StackTrace:   string(debug.Stack()),
	}
}

// WrapUserFacing always produces a new user-facing error, keeping the
// original chain and, when present, the original stack.
func WrapUserFacing(err error, code Code, message string, suggestion string) *AppError {
	if err == nil {
		return nil
	}

	wrapped := &AppError{
		Code:            code,
		Message:         message,
		WrappedError:    err,
		IsUserFacing:    true,
		SuggestedAction: suggestion,
		StackTrace:      string(debug.Stack()),
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		wrapped.InternalDetails = appErr.Error()
		wrapped.StackTrace = appErr.StackTrace
	}
	return wrapped
}

func GetCode(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func GetUserFacingMessage(err error) (string, string, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		for current := appErr; current != nil; {
			if current.IsUserFacing {
				return current.Message, current.SuggestedAction, true
			}
			var next *AppError
			if current.WrappedError == nil || !errors.As(current.WrappedError, &next) {
				break
			}
			current = next
		}
	}
	return "An unexpected error occurred.", "Check logs for more details.", false
}
