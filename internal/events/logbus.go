// Package events publishes generation lifecycle events, either to the
// structured log or to a RabbitMQ topic exchange.
package events

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/devnunnez/Dev/internal/observability"
)

// LogBus implements domain.EventPublisher by writing each event as a log entry.
type LogBus struct{}

// NewLogBus creates a new log-backed event bus.
func NewLogBus() *LogBus {
	return &LogBus{}
}

// Publish logs an event with the given type and data.
func (b *LogBus) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(data)+1)
	fields = append(fields, observability.String("event", eventType))
	for _, k := range keys {
		fields = append(fields, observability.Any(k, data[k]))
	}

	observability.FromContext(ctx).Info("event published", fields...)
}
