package commands

import (
	"errors"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/pkg/guard"
)

var ErrCreateTravellerProfileCommandIsNotConstructed = errors.New(
	"CreateTravellerProfileCommand must be created via NewCreateTravellerProfileCommand constructor",
)

// CreateTravellerProfileCommand registers the Traveller profile of the calling user
// together with the route they usually travel.
type CreateTravellerProfileCommand struct { //nolint:recvcheck //using for validation
	travellerID kernel.UUID
	userID      string
	name        string
	contact     kernel.Contact
	sourceCity  string
	destCity    string

	guard guard.ConstructorGuard
}

func NewCreateTravellerProfileCommand(
	travellerID kernel.UUID,
	userID, name, phone, email, sourceCity, destCity string,
) (CreateTravellerProfileCommand, error) {
	cmd := CreateTravellerProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		travellerID.Validate(),
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setContact(phone, email),
		cmd.setCities(sourceCity, destCity),
	); err != nil {
		return CreateTravellerProfileCommand{}, err
	}

	cmd.travellerID = travellerID
	return cmd, nil
}

func (c CreateTravellerProfileCommand) Validate() error {
	return c.guard.Validate(ErrCreateTravellerProfileCommandIsNotConstructed)
}

func (c CreateTravellerProfileCommand) TravellerID() kernel.UUID {
	return c.travellerID
}

func (c CreateTravellerProfileCommand) UserID() string {
	return c.userID
}

func (c CreateTravellerProfileCommand) Name() string {
	return c.name
}

func (c CreateTravellerProfileCommand) Contact() kernel.Contact {
	return c.contact
}

func (c CreateTravellerProfileCommand) SourceCity() string {
	return c.sourceCity
}

func (c CreateTravellerProfileCommand) DestCity() string {
	return c.destCity
}

func (c *CreateTravellerProfileCommand) setUserID(userID string) error {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateTravellerProfileCommand) setName(name string) error {
	name, err := kernel.NormalizeName(name)
	if err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *CreateTravellerProfileCommand) setContact(phone, email string) error {
	contact, err := kernel.NewContact(phone, email)
	if err != nil {
		return err
	}
	c.contact = contact
	return nil
}

func (c *CreateTravellerProfileCommand) setCities(sourceCity, destCity string) error {
	source, sourceErr := order.NormalizeCity("source_city", sourceCity)
	dest, destErr := order.NormalizeCity("dest_city", destCity)
	if err := errors.Join(sourceErr, destErr); err != nil {
		return err
	}
	c.sourceCity = source
	c.destCity = dest
	return nil
}
