package services

import (
	"errors"
	"fmt"
	"math"

	"shipmate/internal/core/domain/model/order"
)

// Unbounded marks the upper limit of the last tier.
const Unbounded = -1

// Tier charges FlatFee plus PerUnit for every unit of the measured value (km or kg)
// when the value falls into the tier, i.e. is above the previous tier's UpTo and at most UpTo.
type Tier struct {
	UpTo    float64
	FlatFee int64
	PerUnit float64
}

// ItemFee is applied after the distance and weight fees: subtotal*Multiplier + Surcharge.
type ItemFee struct {
	Surcharge  int64
	Multiplier float64
}

// Tariff is the pricing configuration in force. Prices are whole currency units.
type Tariff struct {
	BaseFare      int64
	DistanceTiers []Tier
	WeightTiers   []Tier
	ItemFees      map[order.ItemType]ItemFee
	MinPrice      int64
	MaxPrice      int64
}

// DefaultTariff returns the launch tariff.
func DefaultTariff() Tariff {
	return Tariff{
		BaseFare: 49,
		DistanceTiers: []Tier{
			{UpTo: 50, FlatFee: 30},
			{UpTo: 150, FlatFee: 60},
			{UpTo: 300, FlatFee: 100},
			{UpTo: 600, FlatFee: 150},
			{UpTo: Unbounded, FlatFee: 200},
		},
		WeightTiers: []Tier{
			{UpTo: 1, FlatFee: 0},
			{UpTo: 5, FlatFee: 75},
			{UpTo: 10, FlatFee: 200},
			{UpTo: Unbounded, FlatFee: 400},
		},
		ItemFees: map[order.ItemType]ItemFee{
			order.Documents: {Surcharge: 0, Multiplier: 1},
			order.Clothes:   {Surcharge: 40, Multiplier: 1},
			order.Other:     {Surcharge: 75, Multiplier: 1},
			order.Food:      {Surcharge: 150, Multiplier: 1.1},
		},
		MinPrice: 199,
		MaxPrice: 1499,
	}
}

// Validate checks that the tariff yields a price for every valid input and that the
// price never decreases when distance or weight grow.
func (t Tariff) Validate() error {
	var err error

	if t.BaseFare < 0 {
		err = errors.Join(err, errors.New("base fare must be non-negative"))
	}
	if t.MinPrice <= 0 || t.MaxPrice < t.MinPrice {
		err = errors.Join(err, fmt.Errorf("price bounds [%d, %d] are invalid", t.MinPrice, t.MaxPrice))
	}
	if tierErr := validateTiers(t.DistanceTiers); tierErr != nil {
		err = errors.Join(err, fmt.Errorf("distance tiers: %w", tierErr))
	}
	if tierErr := validateTiers(t.WeightTiers); tierErr != nil {
		err = errors.Join(err, fmt.Errorf("weight tiers: %w", tierErr))
	}
	for _, itemType := range order.ItemTypes() {
		fee, ok := t.ItemFees[itemType]
		switch {
		case !ok:
			err = errors.Join(err, fmt.Errorf("item fee for %s is missing", itemType))
		case fee.Surcharge < 0:
			err = errors.Join(err, fmt.Errorf("item fee for %s: surcharge must be non-negative", itemType))
		case !(fee.Multiplier >= 1) || math.IsInf(fee.Multiplier, 0):
			err = errors.Join(err, fmt.Errorf("item fee for %s: multiplier must be at least 1", itemType))
		}
	}

	return err
}

func validateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return errors.New("at least one tier is required")
	}

	if tiers[len(tiers)-1].UpTo != Unbounded {
		return errors.New("last tier must be unbounded")
	}

	for i, tier := range tiers {
		if tier.FlatFee < 0 || tier.PerUnit < 0 {
			return errors.New("fees must be non-negative")
		}
		if i == 0 {
			if tier.UpTo != Unbounded && tier.UpTo <= 0 {
				return errors.New("first tier must end above zero")
			}
			continue
		}

		prev := tiers[i-1]
		if prev.UpTo == Unbounded {
			return errors.New("no tiers allowed after the unbounded tier")
		}
		if tier.UpTo != Unbounded && tier.UpTo <= prev.UpTo {
			return errors.New("tiers must be strictly increasing")
		}
		if tier.fee(prev.UpTo) < prev.fee(prev.UpTo) {
			return fmt.Errorf("fee drops after %v", prev.UpTo)
		}
	}

	return nil
}

func (tr Tier) fee(value float64) float64 {
	return float64(tr.FlatFee) + tr.PerUnit*value
}

func (tr Tier) contains(value float64) bool {
	return tr.UpTo == Unbounded || value <= tr.UpTo
}

// tierFee returns the fee of the first tier containing value. tiers must be valid.
func tierFee(tiers []Tier, value float64) float64 {
	for _, tier := range tiers {
		if tier.contains(value) {
			return tier.fee(value)
		}
	}
	return tiers[len(tiers)-1].fee(value)
}
