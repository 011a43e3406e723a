package http

import (
	"shipmate/internal/core/application/usecases/queries"
	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/core/domain/model/sender"
	"shipmate/internal/core/domain/model/traveller"
	"shipmate/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func senderFromDomain(s *sender.Sender) servers.Sender {
	return servers.Sender{
		Id:        s.ID().Bytes(),
		Name:      s.Name(),
		Phone:     optional(s.Contact().Phone()),
		Email:     optional(s.Contact().Email()),
		CreatedAt: s.CreatedAt(),
	}
}

func travellerFromDomain(tr *traveller.Traveller) servers.Traveller {
	return servers.Traveller{
		Id:         tr.ID().Bytes(),
		Name:       tr.Name(),
		Phone:      optional(tr.Contact().Phone()),
		Email:      optional(tr.Contact().Email()),
		SourceCity: tr.SourceCity(),
		DestCity:   tr.DestCity(),
		CreatedAt:  tr.CreatedAt(),
	}
}

func orderFromDomain(o *order.Order, role servers.OrderRole) servers.Order {
	route := o.Route()
	return servers.Order{
		Id:          o.ID().Bytes(),
		SenderId:    o.SenderID().Bytes(),
		TravellerId: optionalID(o.TravellerID()),
		SourceCity:  route.SourceCity(),
		DestCity:    route.DestCity(),
		Source:      location(route.Source()),
		Dest:        location(route.Dest()),
		DistanceKm:  route.DistanceKm(),
		WeightKg:    o.Parcel().WeightKg(),
		ItemType:    servers.ItemType(o.Parcel().ItemType().String()),
		Price:       o.Price(),
		Status:      servers.OrderStatus(o.Status().String()),
		Role:        &role,
		CreatedAt:   o.CreatedAt(),
		AcceptedAt:  o.AcceptedAt(),
		DeliveredAt: o.DeliveredAt(),
	}
}

func orderFromReadModel(o queries.OrderResponse) servers.Order {
	var role *servers.OrderRole
	if o.Role != "" {
		r := servers.OrderRole(o.Role)
		role = &r
	}

	return servers.Order{
		Id:          o.ID.Bytes(),
		SenderId:    o.SenderID.Bytes(),
		TravellerId: optionalID(o.TravellerID),
		SourceCity:  o.SourceCity,
		DestCity:    o.DestCity,
		Source:      location(o.Source),
		Dest:        location(o.Dest),
		DistanceKm:  o.DistanceKm,
		WeightKg:    o.WeightKg,
		ItemType:    servers.ItemType(o.ItemType.String()),
		Price:       o.Price,
		Status:      servers.OrderStatus(o.Status.String()),
		Role:        role,
		CreatedAt:   o.CreatedAt,
		AcceptedAt:  o.AcceptedAt,
		DeliveredAt: o.DeliveredAt,
	}
}

func ordersFromReadModel(orders []queries.OrderResponse) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromReadModel(o)
	}
	return response
}

func location(l kernel.Location) servers.Location {
	return servers.Location{Lat: l.Latitude(), Lon: l.Longitude()}
}

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
