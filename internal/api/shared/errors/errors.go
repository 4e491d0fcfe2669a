package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-fragment/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeTooManyRequests  ErrorCode = "too_many_requests"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode        `json:"code"`
	Message string           `json:"message"`
	Details string           `json:"details,omitempty"`
	Kind    domain.ErrorKind `json:"kind,omitempty"`

	status int
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Status returns the HTTP status the error is served with
func (e *APIError) Status() int {
	if e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

func newError(status int, code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
		status:  status,
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return newError(http.StatusBadRequest, ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(http.StatusNotFound, ErrCodeNotFound, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newError(http.StatusUnprocessableEntity, ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(http.StatusUnauthorized, ErrCodeUnauthorized, message, details)
}

func NewForbiddenError(message string, details ...string) *APIError {
	return newError(http.StatusForbidden, ErrCodeForbidden, message, details)
}

func NewConflictError(message string, details ...string) *APIError {
	return newError(http.StatusConflict, ErrCodeConflict, message, details)
}

func NewTooManyRequestsError(message string, details ...string) *APIError {
	return newError(http.StatusTooManyRequests, ErrCodeTooManyRequests, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(http.StatusInternalServerError, ErrCodeInternalError, message, details)
}

func NewServiceError(message string, details ...string) *APIError {
	return newError(http.StatusServiceUnavailable, ErrCodeServiceError, message, details)
}

// FromError converts a session error into an APIError.
// An APIError is returned as is; anything else is classified by its domain kind.
func FromError(message string, err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	kind := domain.KindOf(err)
	var e *APIError
	switch kind {
	case domain.ErrorKindInvalidInput:
		e = NewValidationError(err.Error())
	case domain.ErrorKindNotFound:
		e = NewNotFoundError(message, err.Error())
	case domain.ErrorKindOperationInFlight, domain.ErrorKindWrongNetwork,
		domain.ErrorKindTransactionRejected, domain.ErrorKindTransactionReverted,
		domain.ErrorKindCancelled:
		e = NewConflictError(message, err.Error())
	case domain.ErrorKindNoProvider, domain.ErrorKindNoContractConfigured,
		domain.ErrorKindLedgerUnavailable, domain.ErrorKindReceiptParseFailure:
		e = NewServiceError(message, err.Error())
	default:
		e = NewInternalError(message, err.Error())
	}
	e.Kind = kind
	return e
}
