package http

import (
	"log/slog"
	"net/http"

	"github.com/lookkg/lookkg/pkg/httputil"
	"github.com/lookkg/lookkg/pkg/validator"

	"github.com/lookkg/lookkg/internal/scoring"
	"github.com/lookkg/lookkg/internal/service"
)

// RecommendHandler handles HTTP requests for recommendation endpoints.
type RecommendHandler struct {
	service *service.Recommender
	logger  *slog.Logger
}

// NewRecommendHandler creates a recommendation HTTP handler.
func NewRecommendHandler(svc *service.Recommender, logger *slog.Logger) *RecommendHandler {
	return &RecommendHandler{service: svc, logger: logger}
}

// --- Request DTOs ---

// ComplementarRequest selects a context and asks for compatible items.
// The context resolves in precedence order: item_id, itens, query; with an
// empty resolution the first catalog item serves as context.
type ComplementarRequest struct {
	Query       string            `json:"query" validate:"omitempty,max=255"`
	ItemID      string            `json:"item_id" validate:"omitempty,max=255"`
	Itens       []string          `json:"itens" validate:"omitempty,dive,max=255"`
	TopK        *int              `json:"top_k" validate:"omitempty,gte=1,lte=100"`
	Threshold   float64           `json:"threshold" validate:"gte=0,lte=2"`
	Constraints map[string]string `json:"constraints"`
}

// CompletarRequest asks for one suggestion per missing target category.
type CompletarRequest struct {
	Itens   []string `json:"itens" validate:"required,min=1,dive,max=255"`
	TopK    *int     `json:"top_k" validate:"omitempty,gte=1,lte=100"`
	Targets []string `json:"targets" validate:"omitempty,dive,max=100"`
}

// --- Response DTOs ---

// ComplementarResponse carries the scored suggestions.
type ComplementarResponse struct {
	Results []service.Recommendation `json:"results"`
}

// CompletarResponse carries the per-target picks plus the targets that
// could not be filled.
type CompletarResponse struct {
	Targets map[string][]service.Recommendation `json:"targets"`
	Missing []string                            `json:"missing"`
	Message string                              `json:"message,omitempty"`
}

const completarMessage = "Alguns alvos não puderam ser sugeridos (já existem no look, papel único ocupado ou sem item compatível)."

// --- Handlers ---

// Complementar handles POST /v1/recommend/complementar.
func (h *RecommendHandler) Complementar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req ComplementarRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	topK := 10
	if req.TopK != nil {
		topK = *req.TopK
	}
	cons := scoring.Constraints{
		Ocasion: req.Constraints["ocasion"],
		Clima:   req.Constraints["clima"],
	}

	selected, err := h.service.ResolveSelection(r.Context(), service.Selection{
		ItemID: req.ItemID,
		Itens:  req.Itens,
		Query:  req.Query,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	results, err := h.service.SuggestComplements(r.Context(), selected, topK, req.Threshold, cons)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ComplementarResponse{Results: results})
}

// Completar handles POST /v1/recommend/completar.
func (h *RecommendHandler) Completar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req CompletarRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	topK := 1
	if req.TopK != nil {
		topK = *req.TopK
	}
	targets := req.Targets
	if len(targets) == 0 {
		targets = []string{"sapato", "bolsa", "acessorio"}
	}

	selected, err := h.service.ResolveItems(r.Context(), req.Itens)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	res, err := h.service.CompleteLook(r.Context(), selected, targets, topK)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	resp := CompletarResponse{Targets: res.Targets, Missing: res.Missing}
	if len(res.Missing) > 0 {
		resp.Message = completarMessage
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
