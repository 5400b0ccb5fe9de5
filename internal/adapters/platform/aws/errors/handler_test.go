package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/ec2ctl/internal/errors"
)

// MockErrorWithCode implements interface{ ErrorCode() string } without the rest of smithy.APIError.
type MockErrorWithCode struct {
	Code    string
	Message string
}

func (m *MockErrorWithCode) Error() string {
	return m.Message
}

func (m *MockErrorWithCode) ErrorCode() string {
	return m.Code
}

func apiError(code, msg string) error {
	return &smithy.GenericAPIError{Code: code, Message: msg, Fault: smithy.FaultClient}
}

func canceledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestHandleAWSError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		ctx          context.Context
		expectedCode errors.Code
		userFacing   bool
	}{
		{"nil error", nil, context.Background(), errors.CodeInternal, false},
		{"context canceled", fmt.Errorf("some error"), canceledContext(), errors.CodePlatformAPIError, false},
		{"direct context canceled", context.Canceled, context.Background(), errors.CodePlatformAPIError, false},
		{"wrapped deadline exceeded", fmt.Errorf("send: %w", context.DeadlineExceeded), context.Background(), errors.CodeTimeout, false},
		{"auth failure code", apiError("AuthFailure", "not authorized"), context.Background(), errors.CodePlatformAuthError, true},
		{"access denied exception", apiError("AccessDeniedException", "pricing:GetProducts denied"), context.Background(), errors.CodePlatformAuthError, true},
		{"unauthorized operation in message", fmt.Errorf("UnauthorizedOperation: not allowed"), context.Background(), errors.CodePlatformAuthError, true},
		{"instance not found", apiError("InvalidInstanceID.NotFound", "The instance ID 'i-1' does not exist"), context.Background(), errors.CodeResourceNotFound, true},
		{"vpc not found by suffix", apiError("InvalidVpcID.NotFound", "no vpc"), context.Background(), errors.CodeResourceNotFound, true},
		{"coded error not found", &MockErrorWithCode{Code: "ResourceNotFoundException", Message: "missing"}, context.Background(), errors.CodeResourceNotFound, true},
		{"not found by message", fmt.Errorf("group does not exist"), context.Background(), errors.CodeResourceNotFound, true},
		{"duplicate group", apiError("InvalidGroup.Duplicate", "already exists"), context.Background(), errors.CodeInvalidInput, true},
		{"incorrect state", apiError("IncorrectInstanceState", "instance is terminated"), context.Background(), errors.CodeInvalidInput, true},
		{"throttling", apiError("Throttling", "Rate exceeded"), context.Background(), errors.CodePlatformAPIError, false},
		{"generic error", fmt.Errorf("connection reset"), context.Background(), errors.CodePlatformAPIError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HandleAWSError("EC2", "DescribeInstances", tt.err, tt.ctx)

			appErr, ok := result.(*errors.AppError)
			require.True(t, ok, "Expected an *errors.AppError")
			assert.Equal(t, tt.expectedCode, appErr.Code, "Error code doesn't match expected")
			assert.Equal(t, tt.userFacing, appErr.IsUserFacing)
			if tt.err != nil {
				assert.ErrorIs(t, result, tt.err)
			}
		})
	}
}

func TestInvalidInputCarriesAPIMessage(t *testing.T) {
	err := HandleAWSError("EC2", "CreateSecurityGroup", apiError("InvalidGroup.Duplicate", "The security group 'web' already exists"), context.Background())
	msg, _, ok := errors.GetUserFacingMessage(err)
	assert.True(t, ok)
	assert.Contains(t, msg, "The security group 'web' already exists")
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "Throttling", ErrorCode(fmt.Errorf("op: %w", apiError("Throttling", "slow down"))))
	assert.Equal(t, "X", ErrorCode(&MockErrorWithCode{Code: "X"}))
	assert.Equal(t, "", ErrorCode(fmt.Errorf("plain")))
}

func TestDefaultErrorHandler(t *testing.T) {
	h := &DefaultErrorHandler{}
	err := h.Handle("SNS", "Publish", apiError("AuthorizationError", "denied"), context.Background())
	assert.True(t, errors.Is(err, errors.CodePlatformAuthError))
}
