// Package http exposes the recommendation service over a chi router.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lookkg/lookkg/pkg/httputil"
	"github.com/lookkg/lookkg/pkg/validator"

	"github.com/lookkg/lookkg/internal/domain"
	"github.com/lookkg/lookkg/internal/service"
)

// Request bodies are capped well above any realistic item payload.
const maxBodyBytes = 1 << 20

// ItemHandler handles HTTP requests for catalog item endpoints.
type ItemHandler struct {
	service *service.Recommender
	logger  *slog.Logger
}

// NewItemHandler creates an item HTTP handler.
func NewItemHandler(svc *service.Recommender, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{service: svc, logger: logger}
}

// --- Request DTOs ---

// ItemCreateRequest is the JSON request body for creating or updating an
// item. Attribute validation against the vocabularies happens in the
// domain; here only structural requirements are checked.
type ItemCreateRequest struct {
	Nome      string `json:"nome" validate:"required,min=1,max=255"`
	Categoria string `json:"categoria" validate:"required,min=1,max=100"`
	Cor       string `json:"cor" validate:"required,min=1,max=100"`
	Padrao    string `json:"padrao" validate:"omitempty,max=100"`
	Material  string `json:"material" validate:"omitempty,max=100"`
	Estilo    string `json:"estilo" validate:"omitempty,max=100"`
	Ocasion   string `json:"ocasion" validate:"omitempty,max=100"`
	Clima     string `json:"clima" validate:"omitempty,max=100"`
}

func (req *ItemCreateRequest) toDomain() domain.Item {
	return domain.Item{
		Nome:      req.Nome,
		Categoria: req.Categoria,
		Cor:       req.Cor,
		Padrao:    req.Padrao,
		Material:  req.Material,
		Estilo:    req.Estilo,
		Ocasion:   req.Ocasion,
		Clima:     req.Clima,
	}
}

// SearchRequest is the JSON request body for catalog search.
type SearchRequest struct {
	Query string `json:"query" validate:"max=255"`
	Limit int    `json:"limit" validate:"gte=0,lte=1000"`
}

// --- Response DTOs ---

// ItemCreatedResponse echoes the saved item with its id.
type ItemCreatedResponse struct {
	ItemID string      `json:"item_id"`
	Item   domain.Item `json:"item"`
}

// RebuildResponse reports graph size after a rebuild.
type RebuildResponse struct {
	OK    bool `json:"ok"`
	Nodes int  `json:"nodes"`
	Edges int  `json:"edges"`
}

// OKResponse is the generic success acknowledgement.
type OKResponse struct {
	OK bool `json:"ok"`
}

// --- Handlers ---

// CreateItem handles POST /v1/graph/items and POST /v1/items. The item is
// normalized, persisted and wired into the graph in one call.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req ItemCreateRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	saved, _, err := h.service.UpsertItem(r.Context(), req.toDomain())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ItemCreatedResponse{ItemID: saved.ItemID, Item: saved})
}

// RebuildGraph handles POST /v1/graph/rebuild.
func (h *ItemHandler) RebuildGraph(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.RebuildGraph(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, RebuildResponse{OK: true, Nodes: stats.Nodes, Edges: stats.Edges})
}

// GetItem handles GET /v1/items/{item_id}.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

// ListCatalog handles GET /v1/items/catalog.
func (h *ItemHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListCatalog(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, items)
}

// SearchItems handles POST /v1/items/search.
func (h *ItemHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req SearchRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	if req.Limit <= 0 {
		req.Limit = 100
	}

	items, err := h.service.SearchItems(r.Context(), req.Query, req.Limit)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, items)
}

// DeleteItem handles DELETE /v1/items/{item_id}.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	if err := h.service.DeleteItem(r.Context(), itemID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, OKResponse{OK: true})
}
