package commands

import (
	"context"
	"errors"
	"time"

	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/core/ports"
	"shipmate/internal/pkg/errs"
)

// AcceptOrderCommandHandler assigns a pending order to the caller's Traveller profile.
//
// At most one traveller wins an order. The domain transition rejects orders that are
// already taken when loaded, and the repository Update is a single conditional write
// on the loaded version, so a traveller who lost a race between load and write gets
// the same conflict. Nothing is persisted on failure.
//
// Errors:
//   - PreconditionFailedError (traveller.ReasonProfileRequired): caller has no Traveller
//   - ObjectNotFoundError: no such order
//   - ConflictError (order.ReasonOrderNotAvailable): the order is no longer available
//   - ConflictError (order.ReasonOwnOrder): the caller's own Sender profile placed the order
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewAcceptOrderCommandHandler(uowFactory UoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tr, err := resolveTraveller(ctx, uow.TravellerRepository(), cmd.UserID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = rejectOwnOrder(ctx, uow.SenderRepository(), cmd.UserID(), o); err != nil {
		return nil, err
	}

	if err = o.Accept(tr.ID(), time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// rejectOwnOrder fails when the caller also holds the Sender profile that placed o.
// A caller without a Sender profile cannot own any order.
func rejectOwnOrder(ctx context.Context, repo ports.SenderRepository, userID string, o *order.Order) error {
	s, err := repo.GetByUserID(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if s.ID().IsEqual(o.SenderID()) {
		return errs.NewConflictError("order", o.ID().String(), order.ReasonOwnOrder)
	}
	return nil
}
