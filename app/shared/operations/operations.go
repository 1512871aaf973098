// Package operations wraps service use cases with tracing, metrics, logging,
// panic recovery and transaction handling.
package operations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/AhmedMHR/PadelPal/app/observability/metrics"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/pgerr"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry is the instrumentation a service hands to WithTelemetry.
type Telemetry struct {
	Service string
	Logger  *slog.Logger
	Metrics metrics.OperationMetrics
	Tracer  trace.Tracer
}

// Result is the result shape every service use case returns.
type Result[S any] = results.OperationResult[S, *results.DomainError]

// Func is the generic signature for service operation functions.
type Func[S any] func(ctx context.Context) (Result[S], error)

// TxFunc runs inside a transaction. db is the transaction handle, or nil when
// the service has no database (unit tests with fake repositories).
type TxFunc[S any] func(ctx context.Context, db bun.IDB) (Result[S], error)

// WithTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func WithTelemetry[S any](
	t Telemetry,
	ctx context.Context,
	operationName string,
	identifier string,
	op Func[S],
) (result Result[S], err error) {
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var span trace.Span
	if t.Tracer != nil {
		ctx, span = t.Tracer.Start(ctx, operationName, trace.WithAttributes(
			attribute.String("operation", operationName),
			attribute.String("identifier", identifier),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	if t.Metrics != nil {
		t.Metrics.RecordOperationAttempt(ctx, operationName, t.Service)
	}

	startTime := time.Now()
	defer func() {
		if t.Metrics != nil {
			t.Metrics.RecordOperationDuration(ctx, operationName, t.Service, time.Since(startTime))
		}
	}()

	logger.InfoContext(ctx, "Operation triggered",
		attr.ExtractCorrelationID(ctx),
		attr.String("operation", operationName),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.String("identifier", identifier),
				attr.Error(err),
			)
			if t.Metrics != nil {
				t.Metrics.RecordOperationFailure(ctx, operationName, t.Service)
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, "panic")
			result = Result[S]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
			attr.Error(wrappedErr),
		)
		if t.Metrics != nil {
			t.Metrics.RecordOperationFailure(ctx, operationName, t.Service)
		}
		span.RecordError(wrappedErr)
		span.SetStatus(codes.Error, wrappedErr.Error())
		return result, wrappedErr
	}

	if result.IsFailure() {
		logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
			attr.String("failure_kind", string((*result.Failure).Kind)),
			attr.String("failure_message", (*result.Failure).Error()),
		)
	}

	if result.IsSuccess() {
		logger.InfoContext(ctx, "Operation completed successfully",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
		)
	}

	if t.Metrics != nil {
		t.Metrics.RecordOperationSuccess(ctx, operationName, t.Service)
	}

	return result, nil
}

// RunInTx runs fn inside a transaction on db. A failure result rolls the
// transaction back so no partial writes survive a rejected operation. A
// transaction aborted by contention is reported as a TransactionConflict
// failure rather than an error.
func RunInTx[S any](ctx context.Context, db *bun.DB, fn TxFunc[S]) (Result[S], error) {
	if db == nil {
		return fn(ctx, nil)
	}

	var result Result[S]

	err := db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		if txErr != nil {
			return txErr
		}
		if result.IsFailure() {
			return errRollback
		}
		return nil
	})

	switch {
	case err == nil, err == errRollback:
		return result, nil
	case pgerr.IsTransactionConflict(err):
		return results.FailureResult[S, *results.DomainError](
			results.NewError(results.KindTransactionConflict, "Someone else updated this at the same time, please try again"),
		), nil
	default:
		return Result[S]{}, err
	}
}

var errRollback = rollbackSignal{}

type rollbackSignal struct{}

func (rollbackSignal) Error() string { return "operation rejected, rolling back" }

// Unwrap returns the value held by a successful result. Failures come back as
// the DomainError so callers can match on kind with errors.Is.
func Unwrap[S any](result Result[S], err error) (S, error) {
	var zero S
	if err != nil {
		return zero, err
	}
	if result.IsFailure() {
		return zero, *result.Failure
	}
	if !result.IsSuccess() {
		return zero, fmt.Errorf("operation returned neither success nor failure")
	}
	return *result.Success, nil
}
