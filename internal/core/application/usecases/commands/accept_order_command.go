package commands

import (
	"errors"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a traveller claiming a pending order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  string

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(orderID kernel.UUID, userID string) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	userID, userErr := normalizeUserID(userID)
	if err := errors.Join(orderID.Validate(), userErr); err != nil {
		return AcceptOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.userID = userID
	return cmd, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AcceptOrderCommand) UserID() string {
	return c.userID
}
