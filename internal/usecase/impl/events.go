// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// eventEmitter publishes domain events after a committed write.
// Publishing failures are logged and never returned to the caller.
type eventEmitter struct {
	publisher service.EventPublisher
}

func (e eventEmitter) emit(ctx context.Context, logger *slog.Logger, eventType string, aggregateID uuid.UUID, payload any) {
	if e.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		ID:          uuid.New().String(),
		Type:        eventType,
		AggregateID: aggregateID.String(),
		RequestID:   deliverycontext.RequestIDFromContext(ctx),
		OccurredAt:  time.Now().UTC(),
		Payload:     payload,
	}

	if err := e.publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish domain event",
			slog.String("event_type", eventType),
			slog.String("aggregate_id", event.AggregateID),
			slog.Any("error", err),
		)
	}
}
