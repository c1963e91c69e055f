package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/lookkg/lookkg/pkg/errors"
	"github.com/lookkg/lookkg/pkg/logger"
	"github.com/lookkg/lookkg/pkg/validator"
)

// ErrorBody is the error payload shape used by every endpoint:
// a single human-readable detail string.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// WriteJSON writes a JSON response with the given status code.
// If encoding fails, headers are already sent so nothing can be done.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteDetail writes an ErrorBody with the given status and detail message.
func WriteDetail(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, ErrorBody{Detail: detail})
}

// WriteError maps an error to its HTTP status and writes the error body.
// Validation and not-found errors surface their own message; internal errors
// are logged with request context and masked. It prefers the request-scoped
// logger from context over the fallback logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() {
		l = fallback
	}

	status := apperrors.HTTPStatus(err)

	switch {
	case status == http.StatusUnprocessableEntity,
		status == http.StatusNotFound,
		status == http.StatusBadRequest:
		WriteDetail(w, status, err.Error())
	case status == apperrors.StatusClientClosedRequest:
		// The client is gone; record it and answer into the void.
		l.WarnContext(r.Context(), "request cancelled by client",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		WriteDetail(w, status, "requisição cancelada")
	default:
		l.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		WriteDetail(w, status, "erro interno")
	}
}

// WriteValidationError writes a 422 for DTO-level validation failures,
// mirroring the detail-string shape used for domain validation errors.
func WriteValidationError(w http.ResponseWriter, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		WriteDetail(w, http.StatusUnprocessableEntity, valErr.Error())
		return
	}
	WriteDetail(w, http.StatusBadRequest, err.Error())
}
