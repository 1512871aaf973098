// Package handlerwrapper adapts typed event handlers to watermill handler funcs.
package handlerwrapper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/utils"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// WrapTyped decodes the message payload into a *T, runs handler inside a span
// and propagates the message correlation id through the context.
//
// Undecodable payloads are logged and acknowledged; redelivery could never
// make them valid. Handler errors are returned so the router nacks the message.
func WrapTyped[T any](
	handlerName string,
	logger *slog.Logger,
	tracer trace.Tracer,
	helper utils.Helpers,
	handler func(context.Context, *T) error,
) message.NoPublishHandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(msg *message.Message) error {
		ctx := msg.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = attr.WithCorrelationID(ctx, middleware.MessageCorrelationID(msg))

		var span trace.Span
		if tracer != nil {
			ctx, span = tracer.Start(ctx, handlerName, trace.WithAttributes(
				attribute.String("message.uuid", msg.UUID),
			))
		} else {
			span = trace.SpanFromContext(ctx)
		}
		defer span.End()

		payload := new(T)
		if err := helper.UnmarshalPayload(msg, payload); err != nil {
			logger.ErrorContext(ctx, "Dropping undecodable message",
				attr.ExtractCorrelationID(ctx),
				attr.String("handler", handlerName),
				attr.String("message_id", msg.UUID),
				attr.Error(err),
			)
			span.RecordError(err)
			return nil
		}

		if err := handler(ctx, payload); err != nil {
			wrapped := fmt.Errorf("%s: %w", handlerName, err)
			logger.ErrorContext(ctx, "Event handler failed",
				attr.ExtractCorrelationID(ctx),
				attr.String("handler", handlerName),
				attr.String("message_id", msg.UUID),
				attr.Error(wrapped),
			)
			span.RecordError(wrapped)
			return wrapped
		}
		return nil
	}
}
