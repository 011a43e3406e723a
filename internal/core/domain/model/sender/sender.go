package sender

import (
	"errors"
	"strings"
	"time"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/errs"
)

var ErrSenderIsNotConstructed = errors.New("Sender must be created via NewSender constructor")

const (
	// ReasonProfileRequired is returned when a user acts as a sender without a profile.
	ReasonProfileRequired = "sender_profile_required"

	// ReasonProfileAlreadyExists is returned on a second profile for the same user.
	ReasonProfileAlreadyExists = "profile_already_exists"
)

type Sender struct {
	id        kernel.UUID
	userID    string
	name      string
	contact   kernel.Contact
	createdAt time.Time

	isConstructed bool
}

// NewSender creates the Sender profile of userID, the subject of the caller's access token.
func NewSender(id kernel.UUID, userID, name string, contact kernel.Contact, createdAt time.Time) (*Sender, error) {
	s := &Sender{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setUserID(userID),
		s.setName(name),
		s.setContact(contact),
		s.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Sender) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSenderIsNotConstructed
	}
	return nil
}

func (s *Sender) ID() kernel.UUID {
	return s.id
}

func (s *Sender) UserID() string {
	return s.userID
}

func (s *Sender) Name() string {
	return s.name
}

func (s *Sender) Contact() kernel.Contact {
	return s.contact
}

func (s *Sender) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Sender) IsEqual(other *Sender) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Sender) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Sender) setUserID(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errs.NewValueIsRequiredError("user_id")
	}
	s.userID = userID
	return nil
}

func (s *Sender) setName(name string) error {
	name, err := kernel.NormalizeName(name)
	if err != nil {
		return err
	}
	s.name = name
	return nil
}

func (s *Sender) setContact(contact kernel.Contact) error {
	if contact.IsEmpty() {
		return errs.NewValueIsRequiredError("phone or email")
	}
	s.contact = contact
	return nil
}

func (s *Sender) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	s.createdAt = createdAt.UTC()
	return nil
}
