package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"staybook/internal/app/policies"
	"staybook/internal/domain/shared/events"
)

// Topics maps event names to the Kafka topic each one is published on.
type Topics map[string]string

// Notifier publishes committed domain events as JSON messages, keyed by
// aggregate id so events of one aggregate stay ordered within a partition.
type Notifier struct {
	producer *Producer
	topics   Topics
	timeout  time.Duration
	logger   *slog.Logger
}

var _ policies.Notifier = (*Notifier)(nil)

func NewNotifier(producer *Producer, topics Topics, timeout time.Duration, logger *slog.Logger) *Notifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Notifier{producer: producer, topics: topics, timeout: timeout, logger: logger}
}

func (n *Notifier) Notify(ctx context.Context, ev events.DomainEvent) error {
	topic, ok := n.topics[ev.EventName()]
	if !ok {
		n.logger.Warn("no topic for event, dropping", slog.String("event", ev.EventName()))
		return nil
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("kafka: marshal %s: %w", ev.EventName(), err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	if err := n.producer.Publish(ctx, topic, ev.AggregateID(), payload); err != nil {
		return fmt.Errorf("kafka: publish %s: %w", ev.EventName(), err)
	}
	return nil
}
