package events

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/streamlift/campaign-service/internal/application"
)

type Message struct {
	Topic   string
	Payload []byte
}

type Consumer interface {
	Poll(ctx context.Context, max int) ([]Message, error)
}

// ConsumerWorker feeds catalog sync events from the integrations
// pipeline into the playlist catalog.
type ConsumerWorker struct {
	logger   *slog.Logger
	consumer Consumer
	service  *application.Service
	interval time.Duration
}

func NewConsumerWorker(logger *slog.Logger, consumer Consumer, service *application.Service, interval time.Duration) *ConsumerWorker {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &ConsumerWorker{
		logger: logger, consumer: consumer, service: service, interval: interval,
	}
}

func (w *ConsumerWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.processOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			w.logger.ErrorContext(ctx, "consumer iteration failed",
				"module", "events.consumer_worker",
				"layer", "adapter",
				"operation", "process_once",
				"outcome", "failure",
				"error", err,
			)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *ConsumerWorker) processOnce(ctx context.Context) error {
	msgs, err := w.consumer.Poll(ctx, 50)
	if err != nil {
		return err
	}
	for _, msg := range msgs {
		switch msg.Topic {
		case "catalog.playlist_synced":
			if err := w.service.HandlePlaylistSynced(ctx, msg.Payload); err != nil {
				w.logger.WarnContext(ctx, "failed to handle catalog.playlist_synced", "error", err)
			}
		case "catalog.playlist_removed":
			if err := w.service.HandlePlaylistRemoved(ctx, msg.Payload); err != nil {
				w.logger.WarnContext(ctx, "failed to handle catalog.playlist_removed", "error", err)
			}
		default:
			w.logger.DebugContext(ctx, "skipping message on unexpected topic", "topic", msg.Topic)
		}
	}
	return nil
}
