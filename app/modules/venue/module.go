package venue

import (
	"context"
	"sync"

	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	venueservice "github.com/AhmedMHR/PadelPal/app/modules/venue/application"
	venuehandlers "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/handlers"
	venuedb "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/observability"
	"github.com/AhmedMHR/PadelPal/app/observability/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the venue module.
type Module struct {
	VenueService  venueservice.Service
	observability observability.Observability
	cancelFunc    context.CancelFunc
}

// NewVenueModule wires the venue service and mounts its routes on apiRouter.
func NewVenueModule(
	ctx context.Context,
	obs observability.Observability,
	venueRepo venuedb.Repository,
	matchRepo matchdb.Repository,
	db *bun.DB,
	apiRouter chi.Router,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "venue.NewVenueModule called")

	service := venueservice.NewVenueService(
		venueRepo,
		matchRepo,
		logger,
		metrics.NewPrometheus(obs.Registry, "venue"),
		obs.Tracer,
		db,
	)

	if apiRouter != nil {
		venuehandlers.Routes(apiRouter, venuehandlers.NewVenueHandlers(service, logger, obs.Tracer))
	}

	return &Module{
		VenueService:  service,
		observability: obs,
	}, nil
}

// Run blocks until ctx is cancelled. The venue module has no background work.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()
	if wg != nil {
		defer wg.Done()
	}
	<-ctx.Done()
	m.observability.Logger.Info("Venue module stopped")
}

// Close stops the module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
