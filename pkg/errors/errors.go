package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common cases.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrStoreFailure = errors.New("store failure")
	ErrInternal     = errors.New("internal error")
)

// StatusClientClosedRequest is the nginx convention for a request aborted by
// the client; there is no net/http constant for it.
const StatusClientClosedRequest = 499

// ValidationError reports a field whose value falls outside its declared
// domain. Label carries the user-facing field description (it keeps the
// grammatical gender of the field, e.g. "categoria inválida" vs
// "padrao inválido"), so Error() yields messages like
// "categoria inválida: vestido".
type ValidationError struct {
	Field string
	Value string
	Label string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Label, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Validation creates a ValidationError for the given field.
func Validation(field, label, value string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Label: label}
}

// NotFound creates a not-found error naming the resource.
func NotFound(resource, id string) error {
	return fmt.Errorf("%s %q: %w", resource, id, ErrNotFound)
}

// Store wraps a backend I/O error so it maps to a 5xx at the boundary.
func Store(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreFailure, err)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var valErr *ValidationError
	switch {
	case errors.As(err, &valErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrStoreFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
