package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-fragment/internal/domain"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   ErrorCode
		kind   domain.ErrorKind
	}{
		{
			name:   "invalid token id",
			err:    fmt.Errorf("burn: %w", domain.ErrInvalidTokenID),
			status: http.StatusUnprocessableEntity,
			code:   ErrCodeValidationFailed,
			kind:   domain.ErrorKindInvalidInput,
		},
		{
			name:   "operation in flight",
			err:    domain.ErrOperationInFlight,
			status: http.StatusConflict,
			code:   ErrCodeConflict,
			kind:   domain.ErrorKindOperationInFlight,
		},
		{
			name:   "wrong network",
			err:    fmt.Errorf("switch: %w", domain.ErrWrongNetwork),
			status: http.StatusConflict,
			code:   ErrCodeConflict,
			kind:   domain.ErrorKindWrongNetwork,
		},
		{
			name:   "no contract",
			err:    domain.ErrNoContractConfigured,
			status: http.StatusServiceUnavailable,
			code:   ErrCodeServiceError,
			kind:   domain.ErrorKindNoContractConfigured,
		},
		{
			name:   "ledger unavailable",
			err:    fmt.Errorf("reading price: %w", domain.ErrLedgerUnavailable),
			status: http.StatusServiceUnavailable,
			code:   ErrCodeServiceError,
			kind:   domain.ErrorKindLedgerUnavailable,
		},
		{
			name:   "unclassified reads as ledger unavailable",
			err:    fmt.Errorf("connection reset"),
			status: http.StatusServiceUnavailable,
			code:   ErrCodeServiceError,
			kind:   domain.ErrorKindLedgerUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromError("failed", tt.err)
			assert.Equal(t, tt.status, apiErr.Status())
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.kind, apiErr.Kind)
			assert.Equal(t, tt.err.Error(), apiErr.Details)
		})
	}
}

func TestFromError_KeepsAPIError(t *testing.T) {
	original := NewNotFoundError("Token not found", "7")

	wrapped := fmt.Errorf("lookup: %w", original)
	assert.Same(t, original, FromError("ignored", wrapped))
}

func TestAPIError_DefaultStatus(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, (&APIError{}).Status())
	assert.JSONEq(t, `{"code":"bad_request","message":"Bad","details":"a, b"}`, NewBadRequestError("Bad", "a", "b").Error())
}
