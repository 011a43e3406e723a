package kernel

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"shipmate/internal/pkg/errs"
)

const (
	MaxNameLength  = 100
	MaxPhoneLength = 32
	MaxEmailLength = 254
)

// Contact is how a sender or traveller can be reached. Both fields are optional here;
// profiles decide whether one of them is mandatory.
type Contact struct {
	phone string
	email string
}

// NewContact trims both fields and validates the non-empty ones.
func NewContact(phone, email string) (Contact, error) {
	c := Contact{}

	if err := errors.Join(c.setPhone(phone), c.setEmail(email)); err != nil {
		return Contact{}, err
	}

	return c, nil
}

func (c Contact) Phone() string {
	return c.phone
}

func (c Contact) Email() string {
	return c.email
}

func (c Contact) IsEmpty() bool {
	return c.phone == "" && c.email == ""
}

func (c *Contact) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}
	if n := utf8.RuneCountInString(phone); n > MaxPhoneLength {
		return errs.NewValueIsOutOfRangeError("phone", n, 1, MaxPhoneLength)
	}
	for _, r := range phone {
		if !strings.ContainsRune("+0123456789 -()", r) {
			return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q is not allowed in a phone number", r))
		}
	}
	c.phone = phone
	return nil
}

func (c *Contact) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	if n := utf8.RuneCountInString(email); n > MaxEmailLength {
		return errs.NewValueIsOutOfRangeError("email", n, 3, MaxEmailLength)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a plain address", email))
	}
	c.email = email
	return nil
}

// NormalizeName trims a display name and checks its length.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return "", errs.NewValueIsOutOfRangeError("name", n, 1, MaxNameLength)
	}
	return name, nil
}
