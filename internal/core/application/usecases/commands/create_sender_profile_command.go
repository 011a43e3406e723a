package commands

import (
	"errors"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/errs"
	"shipmate/internal/pkg/guard"
)

var ErrCreateSenderProfileCommandIsNotConstructed = errors.New(
	"CreateSenderProfileCommand must be created via NewCreateSenderProfileCommand constructor",
)

// CreateSenderProfileCommand registers the Sender profile of the calling user.
//
// Example:
//
//	cmd, err := NewCreateSenderProfileCommand(kernel.NewUUID(), claims.Subject, "Asha", "+919876543210", "")
//	if err != nil {
//	    return fmt.Errorf("invalid profile data: %w", err)
//	}
//	s, err := handler.Handle(ctx, cmd)
type CreateSenderProfileCommand struct { //nolint:recvcheck //using for validation
	senderID kernel.UUID
	userID   string
	name     string
	contact  kernel.Contact

	guard guard.ConstructorGuard
}

func NewCreateSenderProfileCommand(
	senderID kernel.UUID,
	userID, name, phone, email string,
) (CreateSenderProfileCommand, error) {
	cmd := CreateSenderProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		senderID.Validate(),
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setContact(phone, email),
	); err != nil {
		return CreateSenderProfileCommand{}, err
	}

	cmd.senderID = senderID
	return cmd, nil
}

func (c CreateSenderProfileCommand) Validate() error {
	return c.guard.Validate(ErrCreateSenderProfileCommandIsNotConstructed)
}

func (c CreateSenderProfileCommand) SenderID() kernel.UUID {
	return c.senderID
}

func (c CreateSenderProfileCommand) UserID() string {
	return c.userID
}

func (c CreateSenderProfileCommand) Name() string {
	return c.name
}

func (c CreateSenderProfileCommand) Contact() kernel.Contact {
	return c.contact
}

func (c *CreateSenderProfileCommand) setUserID(userID string) error {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateSenderProfileCommand) setName(name string) error {
	name, err := kernel.NormalizeName(name)
	if err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *CreateSenderProfileCommand) setContact(phone, email string) error {
	contact, err := kernel.NewContact(phone, email)
	if err != nil {
		return err
	}
	if contact.IsEmpty() {
		return errs.NewValueIsRequiredError("phone or email")
	}
	c.contact = contact
	return nil
}
