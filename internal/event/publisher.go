// Package event provides event publishing abstractions.
//
// Only the logging publisher is implemented. A broker-backed publisher
// implements the same interface and is selected in main.go.
package event

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mvaleed/kernel/domain"
)

// Publisher is the interface for publishing domain events.
// Implementations can be swapped without changing business logic.
type Publisher interface {
	// Publish sends an event to the message broker.
	Publish(ctx context.Context, event domain.Event) error

	// PublishBatch sends multiple events in order.
	PublishBatch(ctx context.Context, events []domain.Event) error

	// Close cleanly shuts down the publisher.
	Close() error
}

// LoggingPublisher implements Publisher by logging events.
// Use this for development/testing or when you don't need a real broker yet.
type LoggingPublisher struct {
	logger *slog.Logger
}

func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger}
}

func (p *LoggingPublisher) Publish(ctx context.Context, event domain.Event) error {
	data, _ := json.Marshal(event.Data)
	p.logger.InfoContext(ctx, "event published",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.String("aggregate_id", event.AggregateID.String()),
		slog.Time("timestamp", event.Timestamp),
		slog.String("data", string(data)),
	)
	return nil
}

func (p *LoggingPublisher) PublishBatch(ctx context.Context, events []domain.Event) error {
	for _, e := range events {
		if err := p.Publish(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (p *LoggingPublisher) Close() error {
	return nil
}

// NoopPublisher is a no-op implementation for when event publishing is disabled.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(ctx context.Context, event domain.Event) error {
	return nil
}

func (p *NoopPublisher) PublishBatch(ctx context.Context, events []domain.Event) error {
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
