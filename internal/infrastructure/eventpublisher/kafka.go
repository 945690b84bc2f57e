package eventpublisher

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/dmarins/bankledger/internal/domain"
)

// KafkaPublisher publishes outbox events to a Kafka topic. Messages
// are keyed by aggregate id so all events of one account or entry
// land on the same partition, in order.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// Publish writes the event to the topic.
func (p *KafkaPublisher) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	value, err := json.Marshal(struct {
		ID            string         `json:"id"`
		AggregateID   string         `json:"aggregate_id"`
		AggregateType string         `json:"aggregate_type"`
		EventType     string         `json:"event_type"`
		Payload       map[string]any `json:"payload"`
	}{
		ID:            event.ID,
		AggregateID:   event.AggregateID,
		AggregateType: event.AggregateType,
		EventType:     event.EventType,
		Payload:       event.Payload,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.AggregateID),
		Value: value,
	})
}

// Close closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
