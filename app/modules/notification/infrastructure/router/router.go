package notificationrouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/AhmedMHR/PadelPal/app/events/matchevents"
	"github.com/AhmedMHR/PadelPal/app/events/userevents"
	notificationhandlers "github.com/AhmedMHR/PadelPal/app/modules/notification/infrastructure/handlers"
	"github.com/AhmedMHR/PadelPal/app/shared/handlerwrapper"
	"github.com/AhmedMHR/PadelPal/app/shared/utils"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// NotificationRouter subscribes the notification consumers to match and
// wallet events.
type NotificationRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     message.Subscriber
	helper         utils.Helpers
	tracer         trace.Tracer
	metricsBuilder *metrics.PrometheusMetricsBuilder
}

// NewNotificationRouter creates a new NotificationRouter. Router metrics are
// registered on registry unless APP_ENV=test.
func NewNotificationRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	helper utils.Helpers,
	tracer trace.Tracer,
	registry *prometheus.Registry,
) *NotificationRouter {
	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if registry != nil && os.Getenv(TestEnvironmentFlag) != TestEnvironmentValue {
		builder := metrics.NewPrometheusMetricsBuilder(registry, "padelpal", "notification")
		metricsBuilder = &builder
	}
	return &NotificationRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		helper:         helper,
		tracer:         tracer,
		metricsBuilder: metricsBuilder,
	}
}

// Configure adds the middleware chain and registers every consumer.
func (r *NotificationRouter) Configure(handlers notificationhandlers.EventHandlers) error {
	if r.metricsBuilder != nil {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	} else {
		r.logger.Info("Skipping Prometheus router metrics middleware")
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: 100 * time.Millisecond,
			Logger:          watermill.NewSlogLogger(r.logger),
		}.Middleware,
	)

	if err := r.RegisterHandlers(handlers); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

type handlerDeps struct {
	router     *message.Router
	subscriber message.Subscriber
	logger     *slog.Logger
	tracer     trace.Tracer
	helper     utils.Helpers
}

func registerHandler[T any](deps handlerDeps, topic string, handler func(context.Context, *T) error) {
	handlerName := "notification." + topic
	deps.router.AddNoPublisherHandler(
		handlerName,
		topic,
		deps.subscriber,
		handlerwrapper.WrapTyped(handlerName, deps.logger, deps.tracer, deps.helper, handler),
	)
}

// RegisterHandlers subscribes each consumer to its topic.
func (r *NotificationRouter) RegisterHandlers(handlers notificationhandlers.EventHandlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		logger:     r.logger,
		tracer:     r.tracer,
		helper:     r.helper,
	}

	registerHandler(deps, matchevents.MatchFullV1, handlers.HandleMatchFull)
	registerHandler(deps, matchevents.MatchCancelledV1, handlers.HandleMatchCancelled)
	registerHandler(deps, matchevents.MatchFinishedV1, handlers.HandleMatchFinished)
	registerHandler(deps, matchevents.MatchScoreCorrectedV1, handlers.HandleScoreCorrected)
	registerHandler(deps, userevents.WalletToppedUpV1, handlers.HandleWalletToppedUp)
	return nil
}

// Close stops the router.
func (r *NotificationRouter) Close() error {
	return r.Router.Close()
}
