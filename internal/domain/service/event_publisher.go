package service

import (
	"context"
	"time"
)

// DomainEvent describes a committed write. Payload is the entity after the write,
// or nil for deletes.
type DomainEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	AggregateID string    `json:"aggregate_id"`
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt  time.Time `json:"occurred_at"`
	Payload     any       `json:"payload,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish delivers a single event. Implementations may buffer.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
