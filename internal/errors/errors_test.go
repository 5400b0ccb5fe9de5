package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsInnermostAppError(t *testing.T) {
	inner := New(CodeResourceNotFound, "instance missing")
	outer := Wrap(fmt.Errorf("context: %w", inner), CodePlatformAPIError, "describe failed")

	require.NotNil(t, outer)
	assert.Equal(t, CodeResourceNotFound, outer.Code)
	assert.Same(t, inner, outer)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeInternal, "nothing"))
	assert.Nil(t, WrapUserFacing(nil, CodeInternal, "nothing", ""))
}

func TestWrapUserFacingKeepsChain(t *testing.T) {
	root := stderrs.New("throttled")
	inner := Wrap(root, CodePlatformAPIError, "describe alarms failed")
	outer := WrapUserFacing(inner, CodePlatformAPIError, "Could not list alarms", "Retry later.")

	assert.True(t, outer.IsUserFacing)
	assert.ErrorIs(t, outer, root)
	assert.Equal(t, inner.Error(), outer.InternalDetails)
	assert.Equal(t, inner.StackTrace, outer.StackTrace)
}

func TestGetUserFacingMessage(t *testing.T) {
	t.Run("user facing at top", func(t *testing.T) {
		msg, hint, ok := GetUserFacingMessage(NewUserFacing(CodeInvalidInput, "instance id is required", "pass --instance"))
		assert.True(t, ok)
		assert.Equal(t, "instance id is required", msg)
		assert.Equal(t, "pass --instance", hint)
	})

	t.Run("user facing nested", func(t *testing.T) {
		inner := InvalidInput("threshold must be a number")
		outer := &AppError{Code: CodeInternal, Message: "outer", WrappedError: inner}
		msg, _, ok := GetUserFacingMessage(outer)
		assert.True(t, ok)
		assert.Equal(t, "threshold must be a number", msg)
	})

	t.Run("not user facing", func(t *testing.T) {
		_, _, ok := GetUserFacingMessage(stderrs.New("boom"))
		assert.False(t, ok)
	})
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid input", InvalidInput("missing"), http.StatusBadRequest},
		{"not found", New(CodeResourceNotFound, "gone"), http.StatusNotFound},
		{"auth", New(CodePlatformAuthError, "denied"), http.StatusForbidden},
		{"source failure", Wrap(stderrs.New("5xx"), CodePlatformAPIError, "failed"), http.StatusBadGateway},
		{"pagination exhausted", New(CodePaginationExhausted, "cycle"), http.StatusBadGateway},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"plain error", stderrs.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
