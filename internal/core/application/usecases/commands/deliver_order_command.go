package commands

import (
	"errors"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents the assigned traveller handing the parcel over.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  string

	guard guard.ConstructorGuard
}

func NewDeliverOrderCommand(orderID kernel.UUID, userID string) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	userID, userErr := normalizeUserID(userID)
	if err := errors.Join(orderID.Validate(), userErr); err != nil {
		return DeliverOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.userID = userID
	return cmd, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DeliverOrderCommand) UserID() string {
	return c.userID
}
