package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/olusolaa/ec2ctl/internal/errors"
)

var authErrorCodes = map[string]struct{}{
	"AuthFailure":                 {},
	"UnauthorizedOperation":       {},
	"AccessDenied":                {},
	"AccessDeniedException":       {},
	"AuthorizationError":          {},
	"InvalidClientTokenId":        {},
	"ExpiredToken":                {},
	"ExpiredTokenException":       {},
	"UnrecognizedClientException": {},
	"SignatureDoesNotMatch":       {},
	"OptInRequired":               {},
}

var notFoundErrorCodes = map[string]struct{}{
	"InvalidInstanceID.NotFound":  {},
	"InvalidInstanceID.Malformed": {},
	"InvalidGroup.NotFound":       {},
	"InvalidGroupId.Malformed":    {},
	"InvalidVpcID.NotFound":       {},
	"InvalidAMIID.NotFound":       {},
	"ResourceNotFound":            {},
	"ResourceNotFoundException":   {},
	"NotFoundException":           {},
	"NotFound":                    {},
}

var invalidInputErrorCodes = map[string]struct{}{
	"InvalidParameter":            {},
	"InvalidParameterValue":       {},
	"InvalidParameterCombination": {},
	"InvalidParameterException":   {},
	"MissingParameter":            {},
	"ValidationException":         {},
	"ValidationError":             {},
	"InvalidGroup.Duplicate":      {},
	"IncorrectInstanceState":      {},
	"InvalidPermission.Duplicate": {},
}

// HandleAWSError maps an AWS SDK error onto an application error code.
// service and operation only feed the error message.
func HandleAWSError(service string, operation string, err error, ctx context.Context) error {
	if err == nil {
		return errors.New(errors.CodeInternal, fmt.Sprintf("unexpected nil error in AWS error handler for %s %s", service, operation))
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return contextError(service, operation, err, ctxErr)
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return contextError(service, operation, err, err)
	}

	code := ErrorCode(err)
	switch {
	case inSet(authErrorCodes, code) || hasAuthMarker(err.Error()):
		return errors.WrapUserFacing(err, errors.CodePlatformAuthError,
			fmt.Sprintf("AWS denied %s %s", service, operation),
			"Check the AWS credentials, profile and IAM permissions in use.")
	case inSet(invalidInputErrorCodes, code):
		return errors.WrapUserFacing(err, errors.CodeInvalidInput,
			fmt.Sprintf("AWS rejected %s %s: %s", service, operation, errorMessage(err)), "")
	case isNotFoundError(err, code):
		return errors.WrapUserFacing(err, errors.CodeResourceNotFound,
			fmt.Sprintf("%s %s: resource not found", service, operation), "")
	}

	return errors.Wrap(err, errors.CodePlatformAPIError, fmt.Sprintf("AWS %s %s failed", service, operation))
}

func contextError(service, operation string, err, cause error) error {
	code := errors.CodePlatformAPIError
	if stderrs.Is(cause, context.DeadlineExceeded) {
		code = errors.CodeTimeout
	}
	return errors.Wrap(err, code, fmt.Sprintf("context ended during AWS %s %s call", service, operation))
}

// ErrorCode returns the AWS API error code carried by err, or "".
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if stderrs.As(err, &apiErr) && apiErr != nil {
		return apiErr.ErrorCode()
	}
	var coded interface{ ErrorCode() string }
	if stderrs.As(err, &coded) && coded != nil {
		return coded.ErrorCode()
	}
	return ""
}

func errorMessage(err error) string {
	var apiErr smithy.APIError
	if stderrs.As(err, &apiErr) && apiErr != nil && apiErr.ErrorMessage() != "" {
		return apiErr.ErrorMessage()
	}
	return err.Error()
}

func hasAuthMarker(msg string) bool {
	return strings.Contains(msg, "AuthFailure") ||
		strings.Contains(msg, "UnauthorizedOperation") ||
		strings.Contains(msg, "AccessDenied")
}

func isNotFoundError(err error, code string) bool {
	if code != "" {
		return inSet(notFoundErrorCodes, code) || strings.HasSuffix(code, ".NotFound")
	}
	msg := err.Error()
	return strings.Contains(msg, "NotFound") ||
		strings.Contains(msg, "not found") ||
		strings.Contains(msg, "does not exist")
}

func inSet(set map[string]struct{}, code string) bool {
	_, ok := set[code]
	return ok
}

// DefaultErrorHandler implements shared.ErrorHandler with HandleAWSError.
type DefaultErrorHandler struct{}

func (d *DefaultErrorHandler) Handle(service, operation string, err error, ctx context.Context) error {
	return HandleAWSError(service, operation, err, ctx)
}
