package eventbus

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_PublishSubscribe(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := NewInMemory(logger)
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := bus.Subscribe(ctx, "padelpal.match.created.v1")
	require.NoError(t, err)

	msg := message.NewMessage("", []byte(`{"match_id":"m-1"}`))
	require.NoError(t, bus.Publish("padelpal.match.created.v1", msg))
	assert.NotEmpty(t, msg.UUID, "publish should assign a message id")

	select {
	case got := <-messages:
		assert.Equal(t, msg.UUID, got.UUID)
		assert.JSONEq(t, `{"match_id":"m-1"}`, string(got.Payload))
		got.Ack()
	case <-ctx.Done():
		t.Fatal("timed out waiting for message")
	}
}

func TestInMemory_CloseIsIdempotentForSharedChannel(t *testing.T) {
	bus := NewInMemory(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, bus.Close())
}

func TestStreamConfigs(t *testing.T) {
	cfgs := StreamConfigs()
	require.Len(t, cfgs, 1)
	assert.Equal(t, StreamName, cfgs[0].Name)
	assert.Equal(t, []string{"padelpal.>"}, cfgs[0].Subjects)
}
