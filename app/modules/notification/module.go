package notification

import (
	"context"
	"fmt"
	"sync"

	notificationservice "github.com/AhmedMHR/PadelPal/app/modules/notification/application"
	notificationhandlers "github.com/AhmedMHR/PadelPal/app/modules/notification/infrastructure/handlers"
	notificationjobs "github.com/AhmedMHR/PadelPal/app/modules/notification/infrastructure/jobs"
	notificationdb "github.com/AhmedMHR/PadelPal/app/modules/notification/infrastructure/repositories"
	notificationrouter "github.com/AhmedMHR/PadelPal/app/modules/notification/infrastructure/router"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/observability"
	"github.com/AhmedMHR/PadelPal/app/observability/metrics"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/utils"
	"github.com/AhmedMHR/PadelPal/config"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the notification module.
type Module struct {
	NotificationService notificationservice.Service
	observability       observability.Observability
	router              *notificationrouter.NotificationRouter
	expiry              *notificationjobs.ChallengeExpiryJob
	cancelFunc          context.CancelFunc
}

// NewNotificationModule wires the inbox service, its HTTP routes and the
// event consumers. Consumers are registered on router, which the caller runs.
func NewNotificationModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	repo notificationdb.Repository,
	userRepo userdb.Repository,
	matches notificationservice.MatchBooker,
	db *bun.DB,
	apiRouter chi.Router,
	router *message.Router,
	subscriber message.Subscriber,
	helper utils.Helpers,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "notification.NewNotificationModule called")

	service := notificationservice.NewNotificationService(
		repo,
		userRepo,
		matches,
		logger,
		metrics.NewPrometheus(obs.Registry, "notification"),
		obs.Tracer,
		db,
	)

	if apiRouter != nil {
		notificationhandlers.Routes(apiRouter, notificationhandlers.NewHTTPHandlers(service, logger, obs.Tracer))
	}

	eventRouter := notificationrouter.NewNotificationRouter(logger, router, subscriber, helper, obs.Tracer, obs.Registry)
	if err := eventRouter.Configure(notificationhandlers.NewEventHandlers(service, logger, obs.Tracer)); err != nil {
		return nil, fmt.Errorf("failed to configure notification router: %w", err)
	}

	return &Module{
		NotificationService: service,
		observability:       obs,
		router:              eventRouter,
		expiry: notificationjobs.NewChallengeExpiryJob(
			service,
			cfg.Notifications.ChallengeTTL,
			cfg.Notifications.SweepInterval,
			logger,
		),
	}, nil
}

// Run starts the challenge expiry job and blocks until ctx is cancelled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()
	if wg != nil {
		defer wg.Done()
	}

	if err := m.expiry.Start(ctx); err != nil {
		m.observability.Logger.ErrorContext(ctx, "Failed to start challenge expiry", attr.Error(err))
	}
	<-ctx.Done()
	m.observability.Logger.Info("Notification module stopped")
}

// Close stops the expiry job. The shared message router is closed by its owner.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return m.expiry.Shutdown()
}
