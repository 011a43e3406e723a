// Package kafka publishes order domain events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shipmate/internal/core/domain/model/order"

	skafka "github.com/segmentio/kafka-go"
)

// Writer is the subset of kafka.Writer the producer uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// OrderChangedMessage is the JSON value of every message. The message key is the order id,
// so all events of one order land on one partition in order.
type OrderChangedMessage struct {
	EventType   string    `json:"event_type"`
	OrderID     string    `json:"order_id"`
	SenderID    string    `json:"sender_id"`
	TravellerID *string   `json:"traveller_id"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// OrderEventsProducer implements ports.EventPublisher on top of a Kafka writer.
type OrderEventsProducer struct {
	writer Writer
}

func NewOrderEventsProducer(brokers []string, topic string) *OrderEventsProducer {
	return &OrderEventsProducer{
		writer: &skafka.Writer{
			Addr:                   skafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &skafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           skafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func NewOrderEventsProducerWithWriter(w Writer) *OrderEventsProducer {
	return &OrderEventsProducer{writer: w}
}

// Publish writes all events in one batch.
func (p *OrderEventsProducer) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]skafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(toMessage(e))
		if err != nil {
			return fmt.Errorf("marshal %s event of order %s: %w", e.Type, e.OrderID, err)
		}
		msgs = append(msgs, skafka.Message{
			Key:   []byte(e.OrderID.String()),
			Value: value,
			Time:  e.OccurredAt,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d order events: %w", len(msgs), err)
	}
	return nil
}

func (p *OrderEventsProducer) Close() error {
	return p.writer.Close()
}

func toMessage(e order.Event) OrderChangedMessage {
	msg := OrderChangedMessage{
		EventType:  string(e.Type),
		OrderID:    e.OrderID.String(),
		SenderID:   e.SenderID.String(),
		Status:     e.Status.String(),
		OccurredAt: e.OccurredAt.UTC(),
	}
	if e.TravellerID != nil {
		id := e.TravellerID.String()
		msg.TravellerID = &id
	}
	return msg
}

// NopPublisher drops events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...order.Event) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
