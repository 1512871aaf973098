package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	StreamName    = "PADELPAL"
	StreamSubject = "padelpal.>"
)

// StreamConfigs lists the JetStream streams the service publishes into.
func StreamConfigs() []jetstream.StreamConfig {
	return []jetstream.StreamConfig{
		{
			Name:     StreamName,
			Subjects: []string{StreamSubject},
			MaxAge:   30 * 24 * time.Hour,
		},
	}
}

// EnsureStreams creates missing streams and updates existing ones in place.
func EnsureStreams(ctx context.Context, js jetstream.JetStream, logger *slog.Logger) error {
	for _, cfg := range StreamConfigs() {
		_, err := js.Stream(ctx, cfg.Name)
		switch {
		case errors.Is(err, jetstream.ErrStreamNotFound):
			if _, err := js.CreateStream(ctx, cfg); err != nil {
				logger.Error("Failed to create JetStream stream", slog.String("stream", cfg.Name), slog.Any("error", err))
				return fmt.Errorf("failed to create stream %s: %w", cfg.Name, err)
			}
			logger.Info("Created JetStream stream", slog.String("stream", cfg.Name))
		case err != nil:
			return fmt.Errorf("failed to check stream %s: %w", cfg.Name, err)
		default:
			if _, err := js.UpdateStream(ctx, cfg); err != nil {
				return fmt.Errorf("failed to update stream %s: %w", cfg.Name, err)
			}
		}
	}
	return nil
}
