package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories it returns are bound to the transaction started by Begin.
// Domain events of the aggregates they persisted are published after Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	SenderRepository() SenderRepository
	TravellerRepository() TravellerRepository
	ComplaintRepository() ComplaintRepository
}
