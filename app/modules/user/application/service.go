package userservice

import (
	"context"
	"log/slog"

	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/observability/metrics"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "UserService"

// UserService implements the Service interface.
type UserService struct {
	repo    userdb.Repository
	logger  *slog.Logger
	metrics metrics.OperationMetrics
	tracer  trace.Tracer
	db      *bun.DB
}

// NewUserService creates a new UserService.
func NewUserService(
	repo userdb.Repository,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		db:      db,
	}
}

func (s *UserService) withTelemetry(ctx context.Context, operationName, identifier string, fn operations.TxFunc[*ProfileView]) (*ProfileView, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, operationName, identifier, func(ctx context.Context) (operations.Result[*ProfileView], error) {
		return operations.RunInTx(ctx, s.db, fn)
	}))
}

func (s *UserService) telemetry() operations.Telemetry {
	return operations.Telemetry{
		Service: serviceName,
		Logger:  s.logger,
		Metrics: s.metrics,
		Tracer:  s.tracer,
	}
}

func success[S any](s S) operations.Result[S] {
	return results.SuccessResult[S, *results.DomainError](s)
}

func failure[S any](f *results.DomainError) operations.Result[S] {
	return results.FailureResult[S](f)
}
