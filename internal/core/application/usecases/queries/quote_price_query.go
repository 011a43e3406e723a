package queries

import (
	"errors"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/core/domain/services"
	"shipmate/internal/pkg/guard"
)

var ErrQuotePriceQueryIsNotConstructed = errors.New(
	"QuotePriceQuery must be created via NewQuotePriceQuery constructor",
)

// QuotePriceQuery asks what a shipment would cost. Quotes are advisory: orders are priced
// again when they are created.
//
// Example:
//
//	query, err := NewQuotePriceQuery(19.0760, 72.8777, 28.7041, 77.1025, 5, "documents")
//	quote, err := handler.Handle(query)
//	// quote.Price == 324
type QuotePriceQuery struct { //nolint:recvcheck //using for validation
	source kernel.Location
	dest   kernel.Location
	parcel order.Parcel

	guard guard.ConstructorGuard
}

func NewQuotePriceQuery(
	sourceLat, sourceLon, destLat, destLon float64,
	weightKg float64,
	itemType string,
) (QuotePriceQuery, error) {
	q := QuotePriceQuery{guard: guard.NewConstructorGuard()}

	source, sourceErr := kernel.NewLocation(sourceLat, sourceLon)
	dest, destErr := kernel.NewLocation(destLat, destLon)
	parcel, parcelErr := parseParcel(weightKg, itemType)
	if err := errors.Join(sourceErr, destErr, parcelErr); err != nil {
		return QuotePriceQuery{}, err
	}

	q.source = source
	q.dest = dest
	q.parcel = parcel
	return q, nil
}

func parseParcel(weightKg float64, itemType string) (order.Parcel, error) {
	it, err := order.ParseItemType(itemType)
	if err != nil {
		return order.Parcel{}, err
	}
	return order.NewParcel(weightKg, it)
}

func (q QuotePriceQuery) Validate() error {
	return q.guard.Validate(ErrQuotePriceQueryIsNotConstructed)
}

// QuotePriceQueryHandler prices against the tariff in force. It does not touch storage.
type QuotePriceQueryHandler struct {
	calculator services.PriceCalculator
}

func NewQuotePriceQueryHandler(calculator services.PriceCalculator) QuotePriceQueryHandler {
	return QuotePriceQueryHandler{calculator: calculator}
}

func (h QuotePriceQueryHandler) Handle(query QuotePriceQuery) (services.Quote, error) {
	if err := query.Validate(); err != nil {
		return services.Quote{}, err
	}

	return h.calculator.Quote(query.source, query.dest, query.parcel.WeightKg(), query.parcel.ItemType())
}
