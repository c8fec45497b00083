package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

const (
	kafkaBatchTimeout = 10 * time.Millisecond
	kafkaWriteTimeout = 5 * time.Second
	kafkaMaxAttempts  = 3
)

// kafkaPublisher implements EventPublisher on a segmentio kafka writer.
// Messages are keyed by aggregate id so events for one entity stay ordered.
type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on brokers.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return &kafkaPublisher{writer: newKafkaWriter(brokers, topic, logger), logger: logger}
}

// newKafkaWriter returns an async writer. WriteMessages only enqueues; delivery
// failures surface through Completion once the batch has been retried.
func newKafkaWriter(brokers []string, topic string, logger *slog.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           kafkaBatchTimeout,
		WriteTimeout:           kafkaWriteTimeout,
		MaxAttempts:            kafkaMaxAttempts,
		Completion: func(messages []kafka.Message, err error) {
			if err == nil {
				return
			}
			for _, msg := range messages {
				logger.Error("[Kafka] Event delivery failed",
					slog.String("topic", topic),
					slog.String("aggregate_id", string(msg.Key)),
					slog.String("event_type", headerValue(msg.Headers, "event_type")),
					slog.Any("error", err),
				)
			}
		},
	}
}

// Publish hands the event to the writer's batch queue and returns without
// waiting for the broker acknowledgement.
func (p *kafkaPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := kafka.Message{
		Key:     []byte(event.AggregateID),
		Value:   value,
		Headers: kafkaHeaders(event),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to enqueue %s event", event.Type)
	}

	p.logger.Debug("[Kafka] Event enqueued",
		slog.String("topic", p.writer.Topic),
		slog.String("event_type", event.Type),
		slog.String("event_id", event.ID),
	)

	return nil
}

// Close flushes pending batches, waits for their completion callbacks and
// closes broker connections.
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}

func kafkaHeaders(event *service.DomainEvent) []kafka.Header {
	attrs := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attrs))
	for key, value := range attrs {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(value)})
	}

	return headers
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}

	return ""
}
