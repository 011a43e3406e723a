package queries

import (
	"errors"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via one of the NewListOrdersFor... constructors",
)

type orderOwner int

const (
	ownerSender orderOwner = iota + 1
	ownerTraveller
	ownerUser
)

// ListOrdersQuery lists the orders of one sender, one traveller, or every order a user
// takes part in on either side. Results are newest first.
//
// Example:
//
//	query, err := NewListOrdersForUserQuery(claims.Subject)
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Println(o.ID, o.Role, o.Status)
//	}
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	owner   orderOwner
	ownerID kernel.UUID
	userID  string

	guard guard.ConstructorGuard
}

func NewListOrdersForSenderQuery(senderID kernel.UUID) (ListOrdersQuery, error) {
	if err := senderID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{owner: ownerSender, ownerID: senderID, guard: guard.NewConstructorGuard()}, nil
}

func NewListOrdersForTravellerQuery(travellerID kernel.UUID) (ListOrdersQuery, error) {
	if err := travellerID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{owner: ownerTraveller, ownerID: travellerID, guard: guard.NewConstructorGuard()}, nil
}

// NewListOrdersForUserQuery lists the orders of the user's Sender and Traveller profiles
// together, each tagged with the role the user has in it. A user without profiles gets
// an empty list.
func NewListOrdersForUserQuery(userID string) (ListOrdersQuery, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{owner: ownerUser, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
