package queries

import (
	"errors"
	"strings"

	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/pkg/guard"
)

var ErrListAvailableOrdersQueryIsNotConstructed = errors.New(
	"ListAvailableOrdersQuery must be created via NewListAvailableOrdersQuery constructor",
)

// ListAvailableOrdersQuery lists the pool travellers pick from: pending orders without a
// traveller. Empty city filters match every city; non-empty ones compare
// case-insensitively.
type ListAvailableOrdersQuery struct { //nolint:recvcheck //using for validation
	sourceCity string
	destCity   string

	guard guard.ConstructorGuard
}

func NewListAvailableOrdersQuery(sourceCity, destCity string) (ListAvailableOrdersQuery, error) {
	q := ListAvailableOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setSourceCity(sourceCity),
		q.setDestCity(destCity),
	); err != nil {
		return ListAvailableOrdersQuery{}, err
	}

	return q, nil
}

func (q ListAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableOrdersQueryIsNotConstructed)
}

func (q ListAvailableOrdersQuery) SourceCity() string {
	return q.sourceCity
}

func (q ListAvailableOrdersQuery) DestCity() string {
	return q.destCity
}

func (q *ListAvailableOrdersQuery) setSourceCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return nil
	}
	city, err := order.NormalizeCity("source_city", city)
	if err != nil {
		return err
	}
	q.sourceCity = city
	return nil
}

func (q *ListAvailableOrdersQuery) setDestCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return nil
	}
	city, err := order.NormalizeCity("dest_city", city)
	if err != nil {
		return err
	}
	q.destCity = city
	return nil
}
