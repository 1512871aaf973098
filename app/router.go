package app

import (
	"context"
	"net/http"
	"time"

	authhandlers "github.com/AhmedMHR/PadelPal/app/modules/auth/infrastructure/handlers"
	"github.com/AhmedMHR/PadelPal/app/observability"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
)

// NewHTTPRouter returns the root router with the public /healthz and
// /metrics endpoints. The auth module mounts /api on it.
func NewHTTPRouter(obs observability.Observability, db *bun.DB) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(authhandlers.CorrelationMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", healthHandler(obs, db))
	r.Handle("/metrics", MetricsHandler(obs.Registry))
	return r
}

// MetricsHandler exposes registry in the Prometheus text format.
func MetricsHandler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

func healthHandler(obs observability.Observability, db *bun.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				obs.Logger.WarnContext(ctx, "Health check failed", attr.ExtractCorrelationID(ctx), attr.Error(err))
				httpx.WriteJSON(w, http.StatusServiceUnavailable, httpx.Response{Success: false, Message: "Database unavailable"})
				return
			}
		}
		httpx.OK(w, http.StatusOK, "ok", nil)
	}
}
