// Package kafkanotify publishes order status change events to Kafka.
// Events are emitted after the transition has been committed, so consumers
// only ever see state that is already durable.
package kafkanotify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"laundry/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// statusChangedMessage is the wire format of one order.status.changed event.
type statusChangedMessage struct {
	OrderID    string `json:"orderId"`
	From       string `json:"from"`
	To         string `json:"to"`
	ChangedBy  string `json:"changedBy"`
	OccurredAt string `json:"occurredAt"`
}

// KafkaOrderNotifier implements ports.OrderNotifier on top of a kafka.Writer.
// Messages are keyed by order ID so all events of one order land in the same
// partition and keep their relative order.
type KafkaOrderNotifier struct {
	writer *kafka.Writer
}

// NewKafkaOrderNotifier creates a notifier publishing to the given writer.
func NewKafkaOrderNotifier(writer *kafka.Writer) *KafkaOrderNotifier {
	return &KafkaOrderNotifier{writer: writer}
}

// NotifyStatusChanged publishes a status change event.
func (n *KafkaOrderNotifier) NotifyStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	message := statusChangedMessage{
		OrderID:    event.OrderID.String(),
		From:       event.From.String(),
		To:         event.To.String(),
		ChangedBy:  event.ChangedBy.String(),
		OccurredAt: event.OccurredAt.UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal status change event: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(message.OrderID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("write status change event: %w", err)
	}

	return nil
}

// Close closes the underlying Kafka writer.
func (n *KafkaOrderNotifier) Close() error {
	return n.writer.Close()
}
