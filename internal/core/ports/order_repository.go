// Package ports defines the contracts between the application core and its adapters:
// repositories bound to a unit of work and the publisher of domain events.
package ports

import (
	"context"
	"time"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a transition of an existing order with a single conditional write
	// guarded by the version the aggregate was loaded with. When another transaction
	// changed the order first it fails with an errs.ConflictError carrying
	// order.ReasonOrderNotAvailable; when the order does not exist it fails with
	// errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetStalePending returns up to limit unassigned Pending orders created before the
	// cutoff, oldest first.
	GetStalePending(ctx context.Context, createdBefore time.Time, limit int) ([]*order.Order, error)
}
