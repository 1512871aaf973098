package matchhandlers

import (
	"context"

	"github.com/AhmedMHR/PadelPal/app/shared/attr"
)

// publish emits a lifecycle event. The mutation has already committed, so a
// failed publish is logged and the request still succeeds.
func (h *MatchHandlers) publish(ctx context.Context, topic string, payload any) {
	msg, err := h.helper.CreateNewMessage(ctx, payload, topic)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to build event",
			attr.ExtractCorrelationID(ctx),
			attr.String("topic", topic),
			attr.Error(err),
		)
		return
	}
	if err := h.publisher.Publish(topic, msg); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish event",
			attr.ExtractCorrelationID(ctx),
			attr.String("topic", topic),
			attr.Error(err),
		)
		return
	}
	h.logger.InfoContext(ctx, "Published event",
		attr.ExtractCorrelationID(ctx),
		attr.String("topic", topic),
		attr.String("message_id", msg.UUID),
	)
}
