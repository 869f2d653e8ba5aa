package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{ErrInvalidInput, http.StatusBadRequest, "INVALID_INPUT"},
		{ErrConflict, http.StatusConflict, "CONFLICT"},

		// Workflow errors
		{ErrAlreadyAssigned, http.StatusConflict, "ALREADY_ASSIGNED"},
		{ErrStaleTarget, http.StatusConflict, "STALE_TARGET"},
		{ErrNeverCall, http.StatusForbidden, "NEVER_CALL"},

		{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{ErrTokenExpired, http.StatusUnauthorized, "TOKEN_EXPIRED"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, StatusCode(tt.err), "error %v", tt.err)
		assert.Equal(t, tt.code, ErrorCode(tt.err), "error %v", tt.err)
	}
}

func TestAppError_PreservesChain(t *testing.T) {
	appErr := New(ErrAlreadyAssigned, "Khách hàng đã được gán trong dự án: CUS-0001")

	assert.True(t, Is(appErr, ErrAlreadyAssigned))
	assert.Equal(t, http.StatusConflict, appErr.StatusCode)
	assert.Equal(t, "ALREADY_ASSIGNED", appErr.Code)
	assert.Equal(t, "Khách hàng đã được gán trong dự án: CUS-0001", appErr.Error())
}

func TestWrap_PreservesSentinel(t *testing.T) {
	wrapped := Wrap(ErrStaleTarget, "failed to record interaction")

	assert.True(t, Is(wrapped, ErrStaleTarget))
	assert.Equal(t, http.StatusConflict, StatusCode(wrapped))
	assert.Equal(t, "STALE_TARGET", ErrorCode(wrapped))
}

func TestUnknownErrorIsInternal(t *testing.T) {
	err := New(ErrInternal, "")
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
	assert.Equal(t, "INTERNAL_ERROR", ErrorCode(err))
}
