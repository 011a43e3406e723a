package order

import (
	"time"

	"shipmate/internal/core/domain/model/kernel"
)

// EventType names a state change of an order.
type EventType string

const (
	EventCreated   EventType = "order.created"
	EventAccepted  EventType = "order.accepted"
	EventDelivered EventType = "order.delivered"
	EventExpired   EventType = "order.expired"
)

// Event is recorded by Order on every transition and published after the
// transaction that persisted it commits.
type Event struct {
	Type        EventType
	OrderID     kernel.UUID
	SenderID    kernel.UUID
	TravellerID *kernel.UUID
	Status      Status
	OccurredAt  time.Time
}
