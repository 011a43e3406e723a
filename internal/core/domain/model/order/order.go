package order

import (
	"errors"
	"fmt"
	"time"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a shipment request from a sender along a route. It is the aggregate root of
// the matching workflow.
//
// Order follows these invariants:
//   - sender, route and parcel never change after creation
//   - the traveller goes from unset to set exactly once, on Accept
//   - Pending and Expired orders have no traveller, Accepted and Delivered orders have one
//   - price is positive and fixed at creation
type Order struct {
	id          kernel.UUID
	senderID    kernel.UUID
	travellerID *kernel.UUID
	route       Route
	parcel      Parcel
	price       int64
	status      Status
	createdAt   time.Time
	acceptedAt  *time.Time
	deliveredAt *time.Time

	// version is the persisted optimistic-concurrency counter as loaded.
	version int

	events []Event

	isConstructed bool
}

// NewOrder creates a Pending order with no traveller and records EventCreated.
//
// Example:
//
//	route, _ := order.NewRoute("Mumbai", "Delhi", mumbai, delhi)
//	parcel, _ := order.NewParcel(5, order.Documents)
//	o, err := order.NewOrder(kernel.NewUUID(), sender.ID(), route, parcel, quote.Price, time.Now())
func NewOrder(
	id kernel.UUID,
	senderID kernel.UUID,
	route Route,
	parcel Parcel,
	price int64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setSenderID(senderID),
		o.setRoute(route),
		o.setParcel(parcel),
		o.setPrice(price),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.record(EventCreated, o.createdAt)
	return o, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID          kernel.UUID
	SenderID    kernel.UUID
	TravellerID *kernel.UUID
	Route       Route
	Parcel      Parcel
	Price       int64
	Status      Status
	CreatedAt   time.Time
	AcceptedAt  *time.Time
	DeliveredAt *time.Time
	Version     int
}

// RestoreOrder rebuilds an order from storage, re-checking every invariant.
// No events are recorded.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setSenderID(s.SenderID),
		o.setRoute(s.Route),
		o.setParcel(s.Parcel),
		o.setPrice(s.Price),
		o.setCreatedAt(s.CreatedAt),
		o.setStatus(s.Status, s.TravellerID),
		o.setVersion(s.Version),
	); err != nil {
		return nil, err
	}

	o.acceptedAt = s.AcceptedAt
	o.deliveredAt = s.DeliveredAt
	return o, nil
}

// Validate ensures the Order instance was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) SenderID() kernel.UUID {
	return o.senderID
}

// TravellerID returns nil until the order is accepted.
func (o *Order) TravellerID() *kernel.UUID {
	return o.travellerID
}

func (o *Order) Route() Route {
	return o.route
}

func (o *Order) Parcel() Parcel {
	return o.parcel
}

func (o *Order) Price() int64 {
	return o.price
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

func (o *Order) Version() int {
	return o.version
}

// AdvanceVersion is called by the repository once a transition was written, so the
// aggregate can be updated again within the same unit of work.
func (o *Order) AdvanceVersion() {
	o.version++
}

// IsAvailable reports whether a traveller may still pick the order.
func (o *Order) IsAvailable() bool {
	return o.status == Pending && o.travellerID == nil
}

// IsVisibleTo reports whether the order belongs to the given sender or traveller.
// Either id may be nil when the caller has no profile of that kind.
func (o *Order) IsVisibleTo(senderID, travellerID *kernel.UUID) bool {
	if senderID != nil && o.senderID.IsEqual(*senderID) {
		return true
	}
	return travellerID != nil && o.travellerID != nil && o.travellerID.IsEqual(*travellerID)
}

// Accept assigns the traveller and moves the order to Accepted.
// Fails with a conflict (ReasonOrderNotAvailable) when the order already has a traveller
// or is no longer Pending.
func (o *Order) Accept(travellerID kernel.UUID, at time.Time) error {
	if err := travellerID.Validate(); err != nil {
		return err
	}

	if o.travellerID != nil {
		return errs.NewConflictError("order", o.id.String(), ReasonOrderNotAvailable)
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return errs.NewConflictErrorWithCause("order", o.id.String(), ReasonOrderNotAvailable, err)
	}

	at = at.UTC()
	o.status = newStatus
	o.travellerID = &travellerID
	o.acceptedAt = &at
	o.record(EventAccepted, at)
	return nil
}

// Deliver marks an Accepted order as Delivered. Only the assigned traveller may do so.
func (o *Order) Deliver(travellerID kernel.UUID, at time.Time) error {
	if err := travellerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return errs.NewConflictErrorWithCause("order", o.id.String(), ReasonOrderNotAccepted, err)
	}

	if o.travellerID == nil || !o.travellerID.IsEqual(travellerID) {
		return errs.NewConflictError("order", o.id.String(), ReasonOrderNotYours)
	}

	at = at.UTC()
	o.status = newStatus
	o.deliveredAt = &at
	o.record(EventDelivered, at)
	return nil
}

// Expire closes a Pending order nobody picked up.
func (o *Order) Expire(at time.Time) error {
	newStatus, err := o.status.Expire()
	if err != nil {
		return errs.NewConflictErrorWithCause("order", o.id.String(), ReasonOrderNotExpirable, err)
	}

	o.status = newStatus
	o.record(EventExpired, at.UTC())
	return nil
}

// DomainEvents returns the events recorded since construction or the last ClearDomainEvents.
func (o *Order) DomainEvents() []Event {
	return append([]Event(nil), o.events...)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(eventType EventType, at time.Time) {
	o.events = append(o.events, Event{
		Type:        eventType,
		OrderID:     o.id,
		SenderID:    o.senderID,
		TravellerID: o.travellerID,
		Status:      o.status,
		OccurredAt:  at,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sender_id", err)
	}
	o.senderID = senderID
	return nil
}

func (o *Order) setRoute(route Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	o.route = route
	return nil
}

func (o *Order) setParcel(parcel Parcel) error {
	if err := parcel.Validate(); err != nil {
		return err
	}
	o.parcel = parcel
	return nil
}

func (o *Order) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	o.price = price
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	o.createdAt = createdAt.UTC()
	return nil
}

func (o *Order) setStatus(status Status, travellerID *kernel.UUID) error {
	if err := errors.Join(status.Validate(), status.ValidateCanHaveTraveller(travellerID != nil)); err != nil {
		return err
	}
	if travellerID != nil {
		if err := travellerID.Validate(); err != nil {
			return err
		}
	}
	o.status = status
	o.travellerID = travellerID
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsOutOfRangeError("version", version, 1, "unbounded")
	}
	o.version = version
	return nil
}
