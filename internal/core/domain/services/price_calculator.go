package services

import (
	"errors"
	"fmt"
	"math"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
)

// Quote is the result of pricing a shipment.
type Quote struct {
	Price      int64
	DistanceKm float64
}

// PriceCalculator quotes shipments against one tariff. It is safe for concurrent use.
//
// Example usage:
//
//	calc, err := services.NewPriceCalculator(services.DefaultTariff())
//	mumbai, _ := kernel.NewLocation(19.0760, 72.8777)
//	delhi, _ := kernel.NewLocation(28.7041, 77.1025)
//	quote, err := calc.Quote(mumbai, delhi, 5, order.Documents)
//	// quote.Price == 324, quote.DistanceKm == 1153.24
type PriceCalculator struct {
	tariff Tariff
}

// NewPriceCalculator fails when the tariff is invalid.
func NewPriceCalculator(tariff Tariff) (PriceCalculator, error) {
	if err := tariff.Validate(); err != nil {
		return PriceCalculator{}, fmt.Errorf("invalid tariff: %w", err)
	}
	return PriceCalculator{tariff: tariff}, nil
}

func (c PriceCalculator) Tariff() Tariff {
	return c.tariff
}

// Quote prices a parcel of weightKg and itemType travelling from source to dest.
// Locations, weight and item type are validated the same way orders validate them.
func (c PriceCalculator) Quote(source, dest kernel.Location, weightKg float64, itemType order.ItemType) (Quote, error) {
	parcel, err := order.NewParcel(weightKg, itemType)
	if err != nil {
		return Quote{}, err
	}

	distance, err := source.DistanceKm(dest)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Price:      c.price(distance, parcel),
		DistanceKm: distance,
	}, nil
}

// QuoteRoute prices a parcel along an already validated route.
func (c PriceCalculator) QuoteRoute(route order.Route, parcel order.Parcel) (Quote, error) {
	if err := errors.Join(route.Validate(), parcel.Validate()); err != nil {
		return Quote{}, err
	}

	return Quote{
		Price:      c.price(route.DistanceKm(), parcel),
		DistanceKm: route.DistanceKm(),
	}, nil
}

func (c PriceCalculator) price(distanceKm float64, parcel order.Parcel) int64 {
	t := c.tariff
	subtotal := float64(t.BaseFare) +
		tierFee(t.DistanceTiers, distanceKm) +
		tierFee(t.WeightTiers, parcel.WeightKg())

	fee := t.ItemFees[parcel.ItemType()]
	total := int64(math.Round(subtotal*fee.Multiplier + float64(fee.Surcharge)))

	return min(max(total, t.MinPrice), t.MaxPrice)
}
