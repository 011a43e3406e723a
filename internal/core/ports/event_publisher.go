package ports

import (
	"context"

	"shipmate/internal/core/domain/model/order"
)

// EventPublisher delivers order events to subscribers outside the service.
// It is called after the transaction that produced the events committed, so a failure
// never undoes the state change.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
