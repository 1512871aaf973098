package notificationhandlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AhmedMHR/PadelPal/app/events/matchevents"
	"github.com/AhmedMHR/PadelPal/app/events/userevents"
	notificationservice "github.com/AhmedMHR/PadelPal/app/modules/notification/application"
	notificationdomain "github.com/AhmedMHR/PadelPal/app/modules/notification/domain"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// EventHandlers turns match and wallet events into inbox notifications.
type EventHandlers interface {
	HandleMatchFull(ctx context.Context, payload *matchevents.MatchFullPayloadV1) error
	HandleMatchCancelled(ctx context.Context, payload *matchevents.MatchCancelledPayloadV1) error
	HandleMatchFinished(ctx context.Context, payload *matchevents.MatchResultPayloadV1) error
	HandleScoreCorrected(ctx context.Context, payload *matchevents.MatchResultPayloadV1) error
	HandleWalletToppedUp(ctx context.Context, payload *userevents.WalletToppedUpPayloadV1) error
}

// NotificationEventHandlers implements EventHandlers.
type NotificationEventHandlers struct {
	service notificationservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewEventHandlers creates a new NotificationEventHandlers instance.
func NewEventHandlers(service notificationservice.Service, logger *slog.Logger, tracer trace.Tracer) EventHandlers {
	return &NotificationEventHandlers{service: service, logger: logger, tracer: tracer}
}

func (h *NotificationEventHandlers) HandleMatchFull(ctx context.Context, payload *matchevents.MatchFullPayloadV1) error {
	text := notificationdomain.MatchFullMessage(payload.Date, payload.StartTime)
	messages := make([]notificationservice.Message, 0, len(payload.Players))
	for _, uid := range payload.Players {
		messages = append(messages, notificationservice.Message{ToUserID: uid, Text: text})
	}
	return h.notify(ctx, notificationdomain.TypeMatchFull, payload.MatchID, payload.MatchID, messages)
}

// HandleMatchCancelled tells every player except the host.
func (h *NotificationEventHandlers) HandleMatchCancelled(ctx context.Context, payload *matchevents.MatchCancelledPayloadV1) error {
	text := notificationdomain.MatchCancelledMessage(payload.Date, payload.StartTime)
	var messages []notificationservice.Message
	for _, uid := range payload.Players {
		if uid == payload.HostID {
			continue
		}
		messages = append(messages, notificationservice.Message{ToUserID: uid, Text: text})
	}
	return h.notify(ctx, notificationdomain.TypeMatchCancelled, payload.MatchID, payload.MatchID, messages)
}

func (h *NotificationEventHandlers) HandleMatchFinished(ctx context.Context, payload *matchevents.MatchResultPayloadV1) error {
	messages := make([]notificationservice.Message, 0, len(payload.Ratings))
	for _, r := range payload.Ratings {
		messages = append(messages, notificationservice.Message{
			ToUserID: r.UserID,
			Text:     notificationdomain.MatchFinishedMessage(payload.Score, r.Winner, r.LevelBefore, r.LevelAfter),
		})
	}
	return h.notify(ctx, notificationdomain.TypeMatchFinished, payload.MatchID, payload.MatchID, messages)
}

func (h *NotificationEventHandlers) HandleScoreCorrected(ctx context.Context, payload *matchevents.MatchResultPayloadV1) error {
	messages := make([]notificationservice.Message, 0, len(payload.Ratings))
	for _, r := range payload.Ratings {
		messages = append(messages, notificationservice.Message{
			ToUserID: r.UserID,
			Text:     notificationdomain.ScoreCorrectedMessage(payload.Score, r.LevelAfter),
		})
	}
	return h.notify(ctx, notificationdomain.TypeScoreCorrected, payload.MatchID, payload.MatchID+"/"+payload.Score, messages)
}

func (h *NotificationEventHandlers) HandleWalletToppedUp(ctx context.Context, payload *userevents.WalletToppedUpPayloadV1) error {
	_, err := h.service.Notify(ctx, notificationservice.Batch{
		Type: notificationdomain.TypeWalletToppedUp,
		Messages: []notificationservice.Message{{
			ToUserID: payload.UserID,
			Text:     notificationdomain.WalletToppedUpMessage(payload.Amount, payload.Balance),
		}},
	})
	return err
}

func (h *NotificationEventHandlers) notify(ctx context.Context, t notificationdomain.Type, matchID, dedup string, messages []notificationservice.Message) error {
	if len(messages) == 0 {
		return nil
	}

	id, err := uuid.Parse(matchID)
	if err != nil {
		// A malformed id can never succeed on redelivery.
		h.logger.WarnContext(ctx, "Ignoring event with invalid match id",
			attr.ExtractCorrelationID(ctx),
			attr.String("type", string(t)),
			attr.String("match_id", matchID),
		)
		return nil
	}

	n, err := h.service.Notify(ctx, notificationservice.Batch{
		Type:     t,
		MatchID:  &id,
		DedupKey: fmt.Sprintf("%s/%s", t, dedup),
		Messages: messages,
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Notifications recorded",
		attr.ExtractCorrelationID(ctx),
		attr.String("type", string(t)),
		attr.String("match_id", matchID),
		attr.Int("count", n),
	)
	return nil
}
