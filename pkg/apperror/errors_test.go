package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("REQ_001", "owner_address is required", http.StatusBadRequest),
			expected: "[REQ_001] owner_address is required",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, fmt.Errorf("address mismatch")),
			expected: "[SYS_001] Internal server error: address mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("REQ_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestInternalError_HidesCause(t *testing.T) {
	sentinel := errors.New("unable to get signer")
	appErr := InternalError(fmt.Errorf("deploy: %w", sentinel))

	assert.Equal(t, "SYS_001", appErr.Code)
	assert.Equal(t, "Internal server error", appErr.Message)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.ErrorIs(t, appErr, sentinel)
}

func TestErrorCatalog(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Validation", Validation("bad"), "REQ_001", 400},
		{"IdempotencyConflict", ErrIdempotencyConflict(), "REQ_002", 409},
		{"PayloadTooLarge", ErrPayloadTooLarge(), "REQ_003", 413},
		{"InvalidToken", ErrInvalidToken(), "AUTH_001", 401},
		{"RateLimitExceeded", ErrRateLimitExceeded(), "RATE_001", 429},
		{"InternalError", InternalError(errors.New("x")), "SYS_001", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}
