// Package commands contains the operations that change state: profile creation,
// order creation and the order lifecycle transitions.
// Every handler validates its command, runs inside one unit of work and commits once.
package commands

import (
	"context"

	"shipmate/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	SenderRepoFactory interface {
		SenderRepository() ports.SenderRepository
	}

	TravellerRepoFactory interface {
		TravellerRepository() ports.TravellerRepository
	}

	ComplaintRepoFactory interface {
		ComplaintRepository() ports.ComplaintRepository
	}

	// SenderUoW is used by sender profile creation.
	SenderUoW interface {
		TxManager
		SenderRepoFactory
	}

	SenderUoWFactory interface {
		Create() SenderUoW
	}

	// TravellerUoW is used by traveller profile creation.
	TravellerUoW interface {
		TxManager
		TravellerRepoFactory
	}

	TravellerUoWFactory interface {
		Create() TravellerUoW
	}

	// OrderUoW is used by operations touching orders only, such as expiry.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans every repository. Used when a caller's profile is resolved in the same
	// transaction that changes an order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tr, err := resolveTraveller(ctx, uow.TravellerRepository(), userID)
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   // ... transition and Update
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		SenderRepoFactory
		TravellerRepoFactory
		ComplaintRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
