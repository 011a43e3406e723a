package commands

import (
	"context"
	"time"

	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/core/domain/services"
)

// CreateOrderCommandHandler places a Pending order for the caller's Sender profile.
// The price is quoted server-side from the tariff in force; client quotes are advisory.
//
// Example:
//
//	calc, _ := services.NewPriceCalculator(services.DefaultTariff())
//	handler := NewCreateOrderCommandHandler(uowFactory, calc)
//	o, err := handler.Handle(ctx, cmd)
//	var precondition *errs.PreconditionFailedError
//	if errors.As(err, &precondition) {
//	    // ask the client to create a sender profile first
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator services.PriceCalculator
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, calculator services.PriceCalculator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle returns a PreconditionFailedError with sender.ReasonProfileRequired when the
// caller has no Sender profile.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	quote, err := h.calculator.QuoteRoute(cmd.Route(), cmd.Parcel())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := resolveSender(ctx, uow.SenderRepository(), cmd.UserID())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), s.ID(), cmd.Route(), cmd.Parcel(), quote.Price, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
