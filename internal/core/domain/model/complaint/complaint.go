// Package complaint provides the Complaint a sender files about one of their orders.
package complaint

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/errs"
)

const MaxIssueLength = 2000

var ErrComplaintIsNotConstructed = errors.New("Complaint must be created via NewComplaint constructor")

type Complaint struct {
	id        kernel.UUID
	orderID   kernel.UUID
	senderID  kernel.UUID
	issue     string
	createdAt time.Time

	isConstructed bool
}

func NewComplaint(id, orderID, senderID kernel.UUID, issue string, createdAt time.Time) (*Complaint, error) {
	c := &Complaint{isConstructed: true}

	if err := errors.Join(
		id.Validate(),
		requireID("order_id", orderID),
		requireID("sender_id", senderID),
		c.setIssue(issue),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created_at")
	}

	c.id = id
	c.orderID = orderID
	c.senderID = senderID
	c.createdAt = createdAt.UTC()
	return c, nil
}

func (c *Complaint) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrComplaintIsNotConstructed
	}
	return nil
}

func (c *Complaint) ID() kernel.UUID {
	return c.id
}

func (c *Complaint) OrderID() kernel.UUID {
	return c.orderID
}

func (c *Complaint) SenderID() kernel.UUID {
	return c.senderID
}

func (c *Complaint) Issue() string {
	return c.issue
}

func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Complaint) setIssue(issue string) error {
	issue = strings.TrimSpace(issue)
	if issue == "" {
		return errs.NewValueIsRequiredError("issue")
	}
	if n := utf8.RuneCountInString(issue); n > MaxIssueLength {
		return errs.NewValueIsOutOfRangeError("issue", n, 1, MaxIssueLength)
	}
	c.issue = issue
	return nil
}

func requireID(paramName string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	return nil
}
