// Package utils contains helpers for building and decoding watermill messages.
package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// TopicMetadataKey records the topic a message was built for.
const TopicMetadataKey = "topic"

// Helpers builds outgoing messages and decodes incoming payloads.
type Helpers interface {
	CreateNewMessage(ctx context.Context, payload any, topic string) (*message.Message, error)
	CreateResultMessage(original *message.Message, payload any, topic string) (*message.Message, error)
	UnmarshalPayload(msg *message.Message, out any) error
}

type helpers struct{}

// NewHelper returns the JSON based Helpers implementation.
func NewHelper() Helpers {
	return helpers{}
}

// CreateNewMessage marshals payload as JSON and stamps the correlation id from
// ctx, generating a fresh one when ctx has none.
func (helpers) CreateNewMessage(ctx context.Context, payload any, topic string) (*message.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload for %s: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	correlationID := attr.CorrelationIDFromContext(ctx)
	if correlationID == "" {
		correlationID = watermill.NewUUID()
	}
	middleware.SetCorrelationID(correlationID, msg)
	msg.Metadata.Set(TopicMetadataKey, topic)
	return msg, nil
}

// CreateResultMessage builds a follow-up message that keeps the original's
// correlation id.
func (h helpers) CreateResultMessage(original *message.Message, payload any, topic string) (*message.Message, error) {
	ctx := context.Background()
	if original != nil {
		ctx = attr.WithCorrelationID(ctx, middleware.MessageCorrelationID(original))
	}
	return h.CreateNewMessage(ctx, payload, topic)
}

// UnmarshalPayload decodes the JSON body of msg into out.
func (helpers) UnmarshalPayload(msg *message.Message, out any) error {
	if msg == nil {
		return fmt.Errorf("nil message")
	}
	if err := json.Unmarshal(msg.Payload, out); err != nil {
		return fmt.Errorf("failed to unmarshal message %s: %w", msg.UUID, err)
	}
	return nil
}
