package commands

import (
	"errors"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/guard"
)

var ErrFileComplaintCommandIsNotConstructed = errors.New(
	"FileComplaintCommand must be created via NewFileComplaintCommand constructor",
)

// FileComplaintCommand represents a sender reporting a problem with one of their orders.
// The issue text is validated by complaint.NewComplaint.
type FileComplaintCommand struct { //nolint:recvcheck //using for validation
	complaintID kernel.UUID
	orderID     kernel.UUID
	userID      string
	issue       string

	guard guard.ConstructorGuard
}

func NewFileComplaintCommand(complaintID, orderID kernel.UUID, userID, issue string) (FileComplaintCommand, error) {
	userID, userErr := normalizeUserID(userID)
	if err := errors.Join(complaintID.Validate(), orderID.Validate(), userErr); err != nil {
		return FileComplaintCommand{}, err
	}

	return FileComplaintCommand{
		complaintID: complaintID,
		orderID:     orderID,
		userID:      userID,
		issue:       issue,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c FileComplaintCommand) Validate() error {
	return c.guard.Validate(ErrFileComplaintCommandIsNotConstructed)
}

func (c FileComplaintCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

func (c FileComplaintCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c FileComplaintCommand) UserID() string {
	return c.userID
}

func (c FileComplaintCommand) Issue() string {
	return c.issue
}
