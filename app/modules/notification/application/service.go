package notificationservice

import (
	"log/slog"
	"time"

	notificationdb "github.com/AhmedMHR/PadelPal/app/modules/notification/infrastructure/repositories"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/observability/metrics"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "NotificationService"

// NotificationService implements the Service interface.
type NotificationService struct {
	repo     notificationdb.Repository
	profiles userdb.Repository
	matches  MatchBooker
	logger   *slog.Logger
	metrics  metrics.OperationMetrics
	tracer   trace.Tracer
	db       *bun.DB
	now      func() time.Time
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(
	repo notificationdb.Repository,
	profiles userdb.Repository,
	matches MatchBooker,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{
		repo:     repo,
		profiles: profiles,
		matches:  matches,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
		db:       db,
		now:      time.Now,
	}
}

func (s *NotificationService) telemetry() operations.Telemetry {
	return operations.Telemetry{
		Service: serviceName,
		Logger:  s.logger,
		Metrics: s.metrics,
		Tracer:  s.tracer,
	}
}

func (s *NotificationService) readDB() bun.IDB {
	if s.db == nil {
		return nil
	}
	return s.db
}

func success[S any](s S) operations.Result[S] {
	return results.SuccessResult[S, *results.DomainError](s)
}

func failure[S any](f *results.DomainError) operations.Result[S] {
	return results.FailureResult[S](f)
}
