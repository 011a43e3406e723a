package order

import (
	"errors"
	"fmt"
	"math"

	"shipmate/internal/pkg/errs"
	"shipmate/internal/pkg/guard"
)

var ErrParcelIsNotConstructed = errs.NewValueIsRequiredError("parcel must be created via NewParcel constructor")

// Parcel describes what is shipped: its weight and category.
type Parcel struct {
	weightKg float64
	itemType ItemType
	guard    guard.ConstructorGuard
}

func NewParcel(weightKg float64, itemType ItemType) (Parcel, error) {
	p := Parcel{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setWeightKg(weightKg), p.setItemType(itemType)); err != nil {
		return Parcel{}, err
	}

	return p, nil
}

func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p Parcel) WeightKg() float64 {
	return p.weightKg
}

func (p Parcel) ItemType() ItemType {
	return p.itemType
}

func (p *Parcel) setWeightKg(weightKg float64) error {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight_kg", fmt.Errorf("%v is not greater than 0", weightKg))
	}
	p.weightKg = weightKg
	return nil
}

func (p *Parcel) setItemType(itemType ItemType) error {
	if err := itemType.Validate(); err != nil {
		return err
	}
	p.itemType = itemType
	return nil
}
