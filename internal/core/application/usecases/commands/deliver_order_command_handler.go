package commands

import (
	"context"
	"time"

	"shipmate/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler marks an accepted order delivered on behalf of its
// assigned traveller. Other travellers and orders that were never accepted get a
// ConflictError.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeliverOrderCommandHandler(uowFactory UoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*order.Order, error) {
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

	if err = o.Deliver(tr.ID(), time.Now()); err != nil {
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
