package queries

import (
	"errors"
	"time"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/guard"
)

var ErrListComplaintsQueryIsNotConstructed = errors.New(
	"ListComplaintsQuery must be created via NewListComplaintsQuery constructor",
)

// ListComplaintsQuery lists the complaints of one order for its sender, newest first.
type ListComplaintsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  string

	guard guard.ConstructorGuard
}

func NewListComplaintsQuery(orderID kernel.UUID, userID string) (ListComplaintsQuery, error) {
	q := ListComplaintsQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setOrderID(orderID),
		q.setUserID(userID),
	); err != nil {
		return ListComplaintsQuery{}, err
	}

	return q, nil
}

func (q ListComplaintsQuery) Validate() error {
	return q.guard.Validate(ErrListComplaintsQueryIsNotConstructed)
}

func (q ListComplaintsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q ListComplaintsQuery) UserID() string {
	return q.userID
}

func (q *ListComplaintsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

func (q *ListComplaintsQuery) setUserID(userID string) error {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return err
	}
	q.userID = userID
	return nil
}

type ComplaintResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Issue     string
	CreatedAt time.Time
}
