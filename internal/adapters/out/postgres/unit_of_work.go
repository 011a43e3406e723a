// Package postgres implements the unit of work over a GORM transaction.
//
// Repositories handed out by a GormUnitOfWork run inside its transaction once Begin was
// called and report every aggregate they persist back to it. After a successful Commit
// the unit of work publishes the domain events of those aggregates. Publishing is detached
// from the caller's cancellation and bounded by PublishTimeout. A failed publish is
// logged and does not fail the commit, the state change is already durable.
//
// Example:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"log/slog"
	"time"

	"shipmate/internal/adapters/out/postgres/complaintrepo"
	"shipmate/internal/adapters/out/postgres/orderrepo"
	"shipmate/internal/adapters/out/postgres/senderrepo"
	"shipmate/internal/adapters/out/postgres/travellerrepo"
	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/core/ports"

	"gorm.io/gorm"
)

// PublishTimeout bounds how long a committed operation waits for its events to be published.
const PublishTimeout = 2 * time.Second

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that record domain events.
type eventSource interface {
	DomainEvents() []order.Event
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates one GormUnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		publishTimeout:    PublishTimeout,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork is not safe for concurrent use.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	publishTimeout    time.Duration
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishTrackedEvents(ctx)
	return nil
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open, which is the
// case after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SenderRepository() ports.SenderRepository {
	return senderrepo.NewGormSenderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TravellerRepository() ports.TravellerRepository {
	return travellerrepo.NewGormTravellerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ComplaintRepository() ports.ComplaintRepository {
	return complaintrepo.NewGormComplaintRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate persisted in this unit of work. An aggregate
// written several times is tracked once.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	for i, tracked := range uow.trackedAggregates {
		if tracked.ID.IsEqual(id) {
			uow.trackedAggregates[i].Aggregate = aggregate
			return
		}
	}

	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishTrackedEvents(ctx context.Context) {
	var events []order.Event
	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}
		events = append(events, source.DomainEvents()...)
		source.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	if len(events) == 0 || uow.publisher == nil {
		return
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uow.publishTimeout)
	defer cancel()

	if err := uow.publisher.Publish(publishCtx, events...); err != nil {
		uow.logger.ErrorContext(ctx, "failed to publish order events",
			"count", len(events),
			"error", err,
		)
	}
}
