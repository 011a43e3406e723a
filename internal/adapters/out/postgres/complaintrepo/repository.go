package complaintrepo

import (
	"context"

	"shipmate/internal/core/domain/model/complaint"
	"shipmate/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormComplaintRepository implements ports.ComplaintRepository using GORM. Complaints are
// read through the queries package only.
type GormComplaintRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormComplaintRepository(db *gorm.DB, tracker aggregateTracker) *GormComplaintRepository {
	return &GormComplaintRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormComplaintRepository) Add(ctx context.Context, aggregate *complaint.Complaint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
