// Package rest wires the HTTP surface: routing, middleware, and handlers.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"rootline-backend/infrastructure/config"
	"rootline-backend/interfaces/http/rest/handlers"
	"rootline-backend/interfaces/http/rest/middleware"
	"rootline-backend/pkg/common"
	"rootline-backend/pkg/observability"
)

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Config        *config.Config
	Logger        *zap.Logger
	Metrics       *observability.Metrics
	Registry      *prometheus.Registry
	IntakeHandler *handlers.IntakeHandler
	HerbHandler   *handlers.HerbHandler
}

// NewRouter builds the chi router with the full middleware stack and all
// API routes mounted under /api/v1.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(deps.Logger))
	if deps.Config.EnableMetrics {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	if deps.Config.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.Config.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/health", healthCheck)
	r.Get("/ready", healthCheck)

	if deps.Config.EnableMetrics {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(
			deps.Registry,
			promhttp.HandlerOpts{},
		))
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Post("/intake", deps.IntakeHandler.GeneratePlan)
		api.Post("/match", deps.IntakeHandler.MatchPreview)

		api.Get("/herbs", deps.HerbHandler.ListHerbs)
		api.Get("/herbs/graph", deps.HerbHandler.GetGraph)
		api.Get("/herbs/{herbID}", deps.HerbHandler.GetHerb)
	})

	return r
}

// healthCheck reports liveness. The herb tables are compiled in and the
// provider is only reached per-request, so there is nothing deeper to probe.
func healthCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
