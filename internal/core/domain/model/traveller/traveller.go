package traveller

import (
	"errors"
	"strings"
	"time"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/pkg/errs"
)

var ErrTravellerIsNotConstructed = errors.New("Traveller must be created via NewTraveller constructor")

const (
	// ReasonProfileRequired is returned when a user acts as a traveller without a profile.
	ReasonProfileRequired = "traveller_profile_required"

	// ReasonProfileAlreadyExists is returned on a second profile for the same user.
	ReasonProfileAlreadyExists = "profile_already_exists"
)

// Traveller carries orders. SourceCity and DestCity describe the route the traveller
// usually takes; clients use them to prefill the available-orders filter.
type Traveller struct {
	id         kernel.UUID
	userID     string
	name       string
	contact    kernel.Contact
	sourceCity string
	destCity   string
	createdAt  time.Time

	isConstructed bool
}

func NewTraveller(
	id kernel.UUID,
	userID, name string,
	contact kernel.Contact,
	sourceCity, destCity string,
	createdAt time.Time,
) (*Traveller, error) {
	tr := &Traveller{contact: contact, isConstructed: true}

	if err := errors.Join(
		tr.setID(id),
		tr.setUserID(userID),
		tr.setName(name),
		tr.setSourceCity(sourceCity),
		tr.setDestCity(destCity),
		tr.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return tr, nil
}

func (tr *Traveller) Validate() error {
	if tr == nil || !tr.isConstructed {
		return ErrTravellerIsNotConstructed
	}
	return nil
}

func (tr *Traveller) ID() kernel.UUID {
	return tr.id
}

func (tr *Traveller) UserID() string {
	return tr.userID
}

func (tr *Traveller) Name() string {
	return tr.name
}

func (tr *Traveller) Contact() kernel.Contact {
	return tr.contact
}

func (tr *Traveller) SourceCity() string {
	return tr.sourceCity
}

func (tr *Traveller) DestCity() string {
	return tr.destCity
}

func (tr *Traveller) CreatedAt() time.Time {
	return tr.createdAt
}

func (tr *Traveller) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	tr.id = id
	return nil
}

func (tr *Traveller) setUserID(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errs.NewValueIsRequiredError("user_id")
	}
	tr.userID = userID
	return nil
}

func (tr *Traveller) setName(name string) error {
	name, err := kernel.NormalizeName(name)
	if err != nil {
		return err
	}
	tr.name = name
	return nil
}

func (tr *Traveller) setSourceCity(city string) error {
	city, err := order.NormalizeCity("source_city", city)
	if err != nil {
		return err
	}
	tr.sourceCity = city
	return nil
}

func (tr *Traveller) setDestCity(city string) error {
	city, err := order.NormalizeCity("dest_city", city)
	if err != nil {
		return err
	}
	tr.destCity = city
	return nil
}

func (tr *Traveller) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	tr.createdAt = createdAt.UTC()
	return nil
}
