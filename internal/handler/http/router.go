package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iamdarshshah/devcollective/internal/service"
	"github.com/iamdarshshah/devcollective/pkg/health"
	"github.com/iamdarshshah/devcollective/pkg/middleware"
)

// RouterConfig carries the transport-level settings the router needs.
type RouterConfig struct {
	CORS         CORSConfig
	CookieSecure bool
}

// NewRouter creates a chi router with all identity service routes registered.
func NewRouter(
	authService *service.AuthService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(CORS(cfg.CORS))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics("identity"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	authHandler := NewAuthHandler(authService, cfg.CookieSecure, logger)
	r.Route("/auth", func(r chi.Router) {
		r.With(ContentTypeJSON).Post("/register", authHandler.Register)
		r.With(ContentTypeJSON).Post("/login", authHandler.Login)
		r.Post("/check", authHandler.Check)
		r.Post("/logout", authHandler.Logout)
		r.Get("/confirmAccount", authHandler.ConfirmAccount)
	})

	return r
}
