package order

import (
	"fmt"
	"strings"

	"shipmate/internal/pkg/errs"
)

// ItemType is the closed set of parcel categories the tariff knows about.
type ItemType string

const (
	Documents ItemType = "documents"
	Food      ItemType = "food"
	Clothes   ItemType = "clothes"
	Other     ItemType = "other"
)

// ItemTypes lists every valid item type in display order.
func ItemTypes() []ItemType {
	return []ItemType{Documents, Food, Clothes, Other}
}

// ParseItemType accepts any letter case and surrounding whitespace.
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t ItemType) Validate() error {
	for _, known := range ItemTypes() {
		if t == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("item_type", fmt.Errorf("%q is not one of documents, food, clothes, other", string(t)))
}

func (t ItemType) String() string {
	return string(t)
}
