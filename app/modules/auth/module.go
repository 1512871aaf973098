package auth

import (
	"context"
	"sync"

	authhandlers "github.com/AhmedMHR/PadelPal/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/AhmedMHR/PadelPal/app/modules/auth/infrastructure/jwt"
	"github.com/AhmedMHR/PadelPal/app/observability"
	"github.com/AhmedMHR/PadelPal/config"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// Module owns token validation and the authenticated /api route group.
type Module struct {
	tokens        authjwt.Provider
	observability observability.Observability
	apiRouter     chi.Router
	cancelFunc    context.CancelFunc
}

// NewModule creates the token provider and mounts /api on httpRouter behind
// CORS, per-IP rate limiting and bearer authentication. Other modules register
// their routes on APIRouter.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	httpRouter chi.Router,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing auth module")

	tokens := authjwt.NewProvider(cfg.JWT.Secret, cfg.JWT.Issuer)
	limiter := authhandlers.NewIPRateLimiter(rate.Limit(cfg.HTTP.RateLimitRPS), cfg.HTTP.RateLimitBurst)

	var apiRouter chi.Router
	if httpRouter != nil {
		apiRouter = httpRouter.Route("/api", func(r chi.Router) {
			r.Use(authhandlers.CORSMiddleware(cfg.HTTP.AllowedOrigins))
			r.Use(authhandlers.RateLimitMiddleware(limiter))
			r.Use(authhandlers.RequireAuth(tokens, logger))
		})
	}

	return &Module{
		tokens:        tokens,
		observability: obs,
		apiRouter:     apiRouter,
	}, nil
}

// APIRouter returns the authenticated /api route group.
func (m *Module) APIRouter() chi.Router {
	return m.apiRouter
}

// Tokens returns the provider used to validate bearer tokens.
func (m *Module) Tokens() authjwt.Provider {
	return m.tokens
}

// Run blocks until ctx is cancelled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()
	if wg != nil {
		defer wg.Done()
	}
	<-ctx.Done()
	m.observability.Logger.InfoContext(ctx, "Auth module goroutine stopped")
}

// Close stops the auth module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
