// Package events carries activity events between the tracking API and the
// AI worker over Kafka.
package events

import (
	"context"
	"encoding/json"

	"github.com/Pasindu599/Fitness-App/internal/domain"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// EventTypeActivityCreated identifies the record emitted for every
// successfully tracked activity.
const EventTypeActivityCreated = "activity.created"

// Publisher emits one event per created activity to the configured topic.
type Publisher interface {
	PublishActivity(ctx context.Context, activity *domain.Activity) error
	Close() error
}

// kafkaPublisher implements Publisher on a single kafka.Writer.
type kafkaPublisher struct {
	writer     *kafka.Writer
	routingKey string
}

// NewKafkaPublisher creates a Publisher writing to the given topic.
// The routing key becomes the message key on every record.
func NewKafkaPublisher(brokers []string, topic, routingKey string) Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	return &kafkaPublisher{writer: writer, routingKey: routingKey}
}

// PublishActivity writes the full persisted activity payload to the topic.
// Errors propagate to the caller; the store write is never rolled back.
func (p *kafkaPublisher) PublishActivity(ctx context.Context, activity *domain.Activity) error {
	payload, err := json.Marshal(activity)
	if err != nil {
		publishFailedCounter.Inc()
		return err
	}

	msg := kafka.Message{
		Key:   []byte(p.routingKey),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "event_type", Value: []byte(EventTypeActivityCreated)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		publishFailedCounter.Inc()
		return err
	}

	publishedCounter.Inc()
	return nil
}

// Close releases the underlying writer.
func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
