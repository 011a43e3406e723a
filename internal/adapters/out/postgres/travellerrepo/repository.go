package travellerrepo

import (
	"context"
	"errors"

	"shipmate/internal/adapters/out/postgres/pgerr"
	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/traveller"
	"shipmate/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTravellerRepository implements ports.TravellerRepository using GORM.
type GormTravellerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTravellerRepository(db *gorm.DB, tracker aggregateTracker) *GormTravellerRepository {
	return &GormTravellerRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTravellerRepository) Add(ctx context.Context, aggregate *traveller.Traveller) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, userIDConstraint) {
			return errs.NewAlreadyExistsErrorWithCause(
				"traveller", dto.UserID, traveller.ReasonProfileAlreadyExists, err,
			)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTravellerRepository) GetByUserID(ctx context.Context, userID string) (*traveller.Traveller, error) {
	var dto TravellerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("traveller", userID)
		}
		return nil, err
	}

	return toDomain(dto)
}
