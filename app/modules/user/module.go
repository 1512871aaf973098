package user

import (
	"context"
	"sync"

	userservice "github.com/AhmedMHR/PadelPal/app/modules/user/application"
	userhandlers "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/handlers"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/observability"
	"github.com/AhmedMHR/PadelPal/app/observability/metrics"
	"github.com/AhmedMHR/PadelPal/app/shared/utils"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the user module.
type Module struct {
	UserService   userservice.Service
	observability observability.Observability
	cancelFunc    context.CancelFunc
}

// NewUserModule wires the profile service and mounts its routes on apiRouter.
func NewUserModule(
	ctx context.Context,
	obs observability.Observability,
	userRepo userdb.Repository,
	db *bun.DB,
	publisher message.Publisher,
	helper utils.Helpers,
	apiRouter chi.Router,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "user.NewUserModule called")

	service := userservice.NewUserService(
		userRepo,
		logger,
		metrics.NewPrometheus(obs.Registry, "user"),
		obs.Tracer,
		db,
	)

	if apiRouter != nil {
		userhandlers.Routes(apiRouter, userhandlers.NewUserHandlers(service, publisher, helper, logger, obs.Tracer))
	}

	return &Module{
		UserService:   service,
		observability: obs,
	}, nil
}

// Run blocks until ctx is cancelled. The user module has no background work.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()
	if wg != nil {
		defer wg.Done()
	}
	<-ctx.Done()
	m.observability.Logger.Info("User module stopped")
}

// Close stops the module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
