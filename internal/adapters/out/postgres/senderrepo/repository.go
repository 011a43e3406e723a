package senderrepo

import (
	"context"
	"errors"

	"shipmate/internal/adapters/out/postgres/pgerr"
	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/sender"
	"shipmate/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSenderRepository implements ports.SenderRepository using GORM.
type GormSenderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormSenderRepository(db *gorm.DB, tracker aggregateTracker) *GormSenderRepository {
	return &GormSenderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add maps a violation of the user_id unique index to errs.AlreadyExistsError.
func (r *GormSenderRepository) Add(ctx context.Context, aggregate *sender.Sender) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, userIDConstraint) {
			return errs.NewAlreadyExistsErrorWithCause("sender", dto.UserID, sender.ReasonProfileAlreadyExists, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSenderRepository) GetByUserID(ctx context.Context, userID string) (*sender.Sender, error) {
	var dto SenderDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sender", userID)
		}
		return nil, err
	}

	return toDomain(dto)
}
