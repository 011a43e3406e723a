package commands

import (
	"context"
)

// ExpireStaleOrdersCommandHandler moves stale pending orders to Expired in one
// transaction. The repository locks the selected rows, so a concurrent accept either
// commits first (and the order is no longer selected) or waits and then loses on the
// version check.
//
// Example:
//
//	cmd, _ := NewExpireStaleOrdersCommand(time.Now(), 48*time.Hour, DefaultExpiryBatchSize)
//	expired, err := handler.Handle(ctx, cmd)
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewExpireStaleOrdersCommandHandler(uowFactory OrderUoWFactory) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of orders expired.
func (h ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	stale, err := repo.GetStalePending(ctx, cmd.Cutoff(), cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	for _, o := range stale {
		if err = o.Expire(cmd.Now()); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
