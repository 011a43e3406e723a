// Package orderrepo persists order aggregates with GORM. Transitions are written with a
// conditional update on the version column, so concurrent transitions of one order
// serialize at the database.
package orderrepo

import (
	"time"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row layout of the orders table. The indexes back the available pool
// listing and the per-sender and per-traveller listings.
type OrderDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	SenderID    uuid.UUID   `gorm:"type:uuid;not null;index"`
	TravellerID *uuid.UUID  `gorm:"type:uuid;index"`
	SourceCity  string      `gorm:"type:varchar(100);not null"`
	DestCity    string      `gorm:"type:varchar(100);not null"`
	Source      LocationDTO `gorm:"embedded;embeddedPrefix:source_"`
	Dest        LocationDTO `gorm:"embedded;embeddedPrefix:dest_"`
	DistanceKm  float64     `gorm:"not null"`
	WeightKg    float64     `gorm:"not null"`
	ItemType    string      `gorm:"type:varchar(16);not null"`
	Price       int64       `gorm:"not null"`
	Status      string      `gorm:"type:varchar(16);not null;index:idx_orders_status_created,priority:1"`
	CreatedAt   time.Time   `gorm:"not null;index:idx_orders_status_created,priority:2"`
	AcceptedAt  *time.Time
	DeliveredAt *time.Time
	Version     int `gorm:"not null;default:1"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type LocationDTO struct {
	Lat float64 `gorm:"not null"`
	Lon float64 `gorm:"not null"`
}

func fromDomain(o *order.Order) OrderDTO {
	var travellerID *uuid.UUID
	if id := o.TravellerID(); id != nil {
		raw := id.Bytes()
		travellerID = &raw
	}

	route := o.Route()
	return OrderDTO{
		ID:          o.ID().Bytes(),
		SenderID:    o.SenderID().Bytes(),
		TravellerID: travellerID,
		SourceCity:  route.SourceCity(),
		DestCity:    route.DestCity(),
		Source:      LocationDTO{Lat: route.Source().Latitude(), Lon: route.Source().Longitude()},
		Dest:        LocationDTO{Lat: route.Dest().Latitude(), Lon: route.Dest().Longitude()},
		DistanceKm:  route.DistanceKm(),
		WeightKg:    o.Parcel().WeightKg(),
		ItemType:    o.Parcel().ItemType().String(),
		Price:       o.Price(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
		AcceptedAt:  o.AcceptedAt(),
		DeliveredAt: o.DeliveredAt(),
		Version:     o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	var travellerID *kernel.UUID
	if dto.TravellerID != nil {
		tID, travellerErr := kernel.UUIDFromBytes((*dto.TravellerID)[:])
		if travellerErr != nil {
			return nil, travellerErr
		}
		travellerID = &tID
	}

	source, err := kernel.NewLocation(dto.Source.Lat, dto.Source.Lon)
	if err != nil {
		return nil, err
	}
	dest, err := kernel.NewLocation(dto.Dest.Lat, dto.Dest.Lon)
	if err != nil {
		return nil, err
	}
	route, err := order.NewRoute(dto.SourceCity, dto.DestCity, source, dest)
	if err != nil {
		return nil, err
	}

	itemType, err := order.ParseItemType(dto.ItemType)
	if err != nil {
		return nil, err
	}
	parcel, err := order.NewParcel(dto.WeightKg, itemType)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:          id,
		SenderID:    senderID,
		TravellerID: travellerID,
		Route:       route,
		Parcel:      parcel,
		Price:       dto.Price,
		Status:      status,
		CreatedAt:   dto.CreatedAt,
		AcceptedAt:  dto.AcceptedAt,
		DeliveredAt: dto.DeliveredAt,
		Version:     dto.Version,
	})
}
