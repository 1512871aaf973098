package matchservice

import (
	"context"
	"log/slog"
	"time"

	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	venuedb "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/observability/metrics"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "MatchService"

// MatchService implements the Service interface.
type MatchService struct {
	repo     matchdb.Repository
	profiles userdb.Repository
	venues   venuedb.Repository
	logger   *slog.Logger
	metrics  metrics.OperationMetrics
	tracer   trace.Tracer
	db       *bun.DB
	now      func() time.Time
}

// NewMatchService creates a new MatchService.
func NewMatchService(
	repo matchdb.Repository,
	profiles userdb.Repository,
	venues venuedb.Repository,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *MatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatchService{
		repo:     repo,
		profiles: profiles,
		venues:   venues,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
		db:       db,
		now:      time.Now,
	}
}

func (s *MatchService) telemetry() operations.Telemetry {
	return operations.Telemetry{
		Service: serviceName,
		Logger:  s.logger,
		Metrics: s.metrics,
		Tracer:  s.tracer,
	}
}

// run executes fn in a transaction wrapped with telemetry and unwraps the result.
func run[S any](s *MatchService, ctx context.Context, operationName, identifier string, fn operations.TxFunc[S]) (S, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, operationName, identifier, func(ctx context.Context) (operations.Result[S], error) {
		return operations.RunInTx(ctx, s.db, fn)
	}))
}
