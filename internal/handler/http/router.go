package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lookkg/lookkg/pkg/health"
	"github.com/lookkg/lookkg/pkg/middleware"

	"github.com/lookkg/lookkg/internal/service"
)

// NewRouter creates a chi router with every service route registered.
func NewRouter(
	svc *service.Recommender,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS)
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Tracing("lookkg"))
	r.Use(middleware.PrometheusMetrics("lookkg"))

	// Health check and metrics endpoints
	r.Get("/health", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	itemHandler := NewItemHandler(svc, logger)
	recommendHandler := NewRecommendHandler(svc, logger)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)

		r.Post("/graph/items", itemHandler.CreateItem)
		r.Post("/graph/rebuild", itemHandler.RebuildGraph)

		r.Post("/items", itemHandler.CreateItem)
		r.Post("/items/search", itemHandler.SearchItems)

		// Catalog listing must come before /{item_id} to avoid conflict.
		// The catalog changes rarely, so let clients cache it briefly.
		r.With(middleware.CacheControl(30)).Get("/items/catalog", itemHandler.ListCatalog)
		r.Get("/items/{item_id}", itemHandler.GetItem)
		r.Delete("/items/{item_id}", itemHandler.DeleteItem)

		r.Post("/recommend/complementar", recommendHandler.Complementar)
		r.Post("/recommend/completar", recommendHandler.Completar)
	})

	return r
}
