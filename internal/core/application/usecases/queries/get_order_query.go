package queries

import (
	"errors"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery reads one order on behalf of a user. Only the order's sender and its
// traveller can see it; everyone else gets errs.ObjectNotFoundError.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, userID string) (GetOrderQuery, error) {
	q := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setOrderID(orderID),
		q.setUserID(userID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) UserID() string {
	return q.userID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setUserID(userID string) error {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return err
	}
	q.userID = userID
	return nil
}
