package ports

import (
	"context"

	"shipmate/internal/core/domain/model/complaint"
	"shipmate/internal/core/domain/model/sender"
	"shipmate/internal/core/domain/model/traveller"
)

// SenderRepository stores at most one Sender per user.
type SenderRepository interface {
	// Add fails with errs.AlreadyExistsError when the user already owns a Sender.
	Add(ctx context.Context, aggregate *sender.Sender) error

	// GetByUserID returns errs.ObjectNotFoundError when the user has no Sender.
	GetByUserID(ctx context.Context, userID string) (*sender.Sender, error)
}

// TravellerRepository stores at most one Traveller per user.
type TravellerRepository interface {
	// Add fails with errs.AlreadyExistsError when the user already owns a Traveller.
	Add(ctx context.Context, aggregate *traveller.Traveller) error

	// GetByUserID returns errs.ObjectNotFoundError when the user has no Traveller.
	GetByUserID(ctx context.Context, userID string) (*traveller.Traveller, error)
}

type ComplaintRepository interface {
	Add(ctx context.Context, aggregate *complaint.Complaint) error
}
