package match

import (
	"context"
	"sync"

	matchservice "github.com/AhmedMHR/PadelPal/app/modules/match/application"
	matchhandlers "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/handlers"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	venuedb "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/observability"
	"github.com/AhmedMHR/PadelPal/app/observability/metrics"
	"github.com/AhmedMHR/PadelPal/app/shared/utils"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the match module.
type Module struct {
	MatchService  matchservice.Service
	observability observability.Observability
	cancelFunc    context.CancelFunc
}

// NewMatchModule wires the match service and mounts its routes on apiRouter.
// Lifecycle events go out through publisher.
func NewMatchModule(
	ctx context.Context,
	obs observability.Observability,
	matchRepo matchdb.Repository,
	userRepo userdb.Repository,
	venueRepo venuedb.Repository,
	db *bun.DB,
	publisher message.Publisher,
	helper utils.Helpers,
	apiRouter chi.Router,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "match.NewMatchModule called")

	service := matchservice.NewMatchService(
		matchRepo,
		userRepo,
		venueRepo,
		logger,
		metrics.NewPrometheus(obs.Registry, "match"),
		obs.Tracer,
		db,
	)

	if apiRouter != nil {
		matchhandlers.Routes(apiRouter, matchhandlers.NewMatchHandlers(service, publisher, helper, logger, obs.Tracer))
	}

	return &Module{
		MatchService:  service,
		observability: obs,
	}, nil
}

// Run blocks until ctx is cancelled. The match module has no background work.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()
	if wg != nil {
		defer wg.Done()
	}
	<-ctx.Done()
	m.observability.Logger.Info("Match module stopped")
}

// Close stops the module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
