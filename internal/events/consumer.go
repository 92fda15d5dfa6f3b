package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/Pasindu599/Fitness-App/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Reader exposes the minimal kafka.Reader interface needed by the consumer.
type Reader interface {
	FetchMessage(context.Context) (kafka.Message, error)
	CommitMessages(context.Context, ...kafka.Message) error
	Close() error
}

// Handler receives decoded activities from the event channel.
type Handler interface {
	Handle(ctx context.Context, activity *domain.Activity) error
}

// Consumer pulls activity events from Kafka, decodes them, and dispatches to
// a Handler. Handler errors are logged and the message is still committed:
// an event produces at most one recommendation attempt.
type Consumer struct {
	reader  Reader
	handler Handler
	logger  *log.Logger
}

// ConsumerOption configures optional behaviour for the Consumer.
type ConsumerOption func(*Consumer)

// WithLogger overrides the logger used to report errors.
func WithLogger(logger *log.Logger) ConsumerOption {
	return func(c *Consumer) {
		c.logger = logger
	}
}

// NewConsumer constructs a Consumer with the provided reader and handler.
func NewConsumer(reader Reader, handler Handler, opts ...ConsumerOption) *Consumer {
	c := &Consumer{
		reader:  reader,
		handler: handler,
		logger:  log.New(log.Writer(), "[events] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewKafkaReader creates a group reader for the activity topic.
func NewKafkaReader(brokers []string, topic, groupID string) Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
}

// Run starts a blocking loop that processes events until the context is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			c.logger.Printf("fetch error: %v", err)
			continue
		}

		var activity domain.Activity
		if err := json.Unmarshal(msg.Value, &activity); err != nil {
			c.logger.Printf("skipping undecodable message at offset %d: %v", msg.Offset, err)
		} else {
			consumedCounter.Inc()
			if err := c.handler.Handle(ctx, &activity); err != nil {
				handlerErrorCounter.Inc()
				c.logger.Printf("handler error for activity %s: %v", activity.ID.Hex(), err)
			}
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Printf("commit error at offset %d: %v", msg.Offset, err)
		}
	}
}

// Close releases the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
