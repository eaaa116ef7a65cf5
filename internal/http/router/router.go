package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AMESmith/customer-dashboard/internal/config"
	"github.com/AMESmith/customer-dashboard/internal/http/handler"
	"github.com/AMESmith/customer-dashboard/internal/http/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/AMESmith/customer-dashboard/docs" // Import generated swagger docs
)

// DatasetStatus reports on the loaded dataset for the readiness probe.
// Satisfied by *service.DashboardService.
type DatasetStatus interface {
	RecordCount() int
	LoadedAt() time.Time
}

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	dataset          DatasetStatus
	rateLimiter      *middleware.RateLimiter
	dashboardHandler *handler.DashboardHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	dataset DatasetStatus,
	rateLimiter *middleware.RateLimiter,
	dashboardHandler *handler.DashboardHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		dataset:          dataset,
		rateLimiter:      rateLimiter,
		dashboardHandler: dashboardHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Readiness: the dataset is loaded before the server starts, so a
	// running server with a dataset status is ready
	r.Get("/health/ready", rt.ready)

	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/options", rt.dashboardHandler.GetOptions)
			r.Get("/view", rt.dashboardHandler.GetView)
			r.Post("/view", rt.dashboardHandler.PostView)
			r.Get("/records", rt.dashboardHandler.ListRecords)
		})
	})

	return r
}

func (rt *Router) ready(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if rt.dataset == nil {
		rt.logger.Error("Readiness check failed: dataset not loaded")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "unhealthy",
			"checks": map[string]interface{}{
				"dataset": map[string]interface{}{"status": "unhealthy", "error": "dataset not loaded"},
			},
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "healthy",
		"checks": map[string]interface{}{
			"dataset": map[string]interface{}{
				"status":    "healthy",
				"records":   rt.dataset.RecordCount(),
				"loaded_at": rt.dataset.LoadedAt().UTC().Format(time.RFC3339),
			},
		},
	})
}
