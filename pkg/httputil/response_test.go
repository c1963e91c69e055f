package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lookkg/lookkg/pkg/errors"
	"github.com/lookkg/lookkg/pkg/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Detail
}

// --- WriteJSON ---

func TestWriteJSON_SetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWriteJSON_StatusCodes(t *testing.T) {
	codes := []int{http.StatusOK, http.StatusCreated, http.StatusNotFound, http.StatusTeapot}
	for _, code := range codes {
		rec := httptest.NewRecorder()
		WriteJSON(rec, code, ErrorBody{})
		assert.Equal(t, code, rec.Code)
	}
}

// --- WriteDetail ---

func TestWriteDetail_Shape(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteDetail(rec, http.StatusNotFound, "item não encontrado")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "item não encontrado", decodeDetail(t, rec))
}

// --- WriteError ---

func TestWriteError_ValidationError_SurfacesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/items", nil)

	WriteError(rec, req, apperrors.Validation("categoria", "categoria inválida", "vestido"), testLogger())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "categoria inválida: vestido", decodeDetail(t, rec))
}

func TestWriteError_NotFound_SurfacesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/items/x", nil)

	WriteError(rec, req, apperrors.NotFound("item", "x"), testLogger())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeDetail(t, rec), "x")
}

func TestWriteError_Canceled_Returns499(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/recommend/complementar", nil)

	WriteError(rec, req, fmt.Errorf("score candidates: %w", context.Canceled), testLogger())

	assert.Equal(t, apperrors.StatusClientClosedRequest, rec.Code)
	assert.Equal(t, "requisição cancelada", decodeDetail(t, rec))
}

func TestWriteError_DeadlineExceeded_Returns504(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/recommend/completar", nil)

	WriteError(rec, req, context.DeadlineExceeded, testLogger())

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "erro interno", decodeDetail(t, rec), "timeout detail is masked")
}

func TestWriteError_StoreFailure_MasksDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/items/catalog", nil)

	WriteError(rec, req, apperrors.Store("load catalog", fmt.Errorf("permission denied: /data/itens.json")), testLogger())

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "erro interno", decodeDetail(t, rec), "backend paths must not leak")
}

func TestWriteError_UnknownError_Returns500Masked(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	WriteError(rec, req, fmt.Errorf("something unexpected"), testLogger())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "erro interno", decodeDetail(t, rec))
}

// --- WriteValidationError ---

func TestWriteValidationError_DTOValidation_Returns422(t *testing.T) {
	type payload struct {
		Nome string `json:"nome" validate:"required"`
	}
	err := validator.Validate(payload{})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	WriteValidationError(rec, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeDetail(t, rec), "Nome")
}

func TestWriteValidationError_DecodeError_Returns400(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteValidationError(rec, fmt.Errorf("decode request body: unexpected EOF"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeDetail(t, rec), "decode request body")
}
