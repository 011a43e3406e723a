// Package servers holds the HTTP contract of api/openapi.yml: request and response
// types, the ServerInterface implemented by the HTTP adapter and the echo routing that
// binds path and query parameters before calling it.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for ItemType.
const (
	Clothes   ItemType = "clothes"
	Documents ItemType = "documents"
	Food      ItemType = "food"
	Other     ItemType = "other"
)

// Defines values for OrderRole.
const (
	OrderRoleSender    OrderRole = "sender"
	OrderRoleTraveller OrderRole = "traveller"
)

// Defines values for OrderStatus.
const (
	Accepted  OrderStatus = "accepted"
	Delivered OrderStatus = "delivered"
	Expired   OrderStatus = "expired"
	Pending   OrderStatus = "pending"
)

// Complaint defines model for Complaint.
type Complaint struct {
	CreatedAt time.Time          `json:"created_at"`
	Id        openapi_types.UUID `json:"id"`
	Issue     string             `json:"issue"`
	OrderId   openapi_types.UUID `json:"order_id"`
}

// Error defines model for Error.
type Error struct {
	Detail string `json:"detail"`
	Reason string `json:"reason"`
}

// ItemType defines model for ItemType.
type ItemType string

// Location defines model for Location.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewComplaint defines model for NewComplaint.
type NewComplaint struct {
	Issue string `json:"issue" validate:"required,max=2000"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	DestCity   string   `json:"dest_city" validate:"required,max=100"`
	DestLat    float64  `json:"dest_lat" validate:"gte=-90,lte=90"`
	DestLon    float64  `json:"dest_lon" validate:"gte=-180,lte=180"`
	ItemType   ItemType `json:"item_type"`
	SourceCity string   `json:"source_city" validate:"required,max=100"`
	SourceLat  float64  `json:"source_lat" validate:"gte=-90,lte=90"`
	SourceLon  float64  `json:"source_lon" validate:"gte=-180,lte=180"`
	WeightKg   float64  `json:"weight_kg" validate:"gt=0"`
}

// NewSender defines model for NewSender.
type NewSender struct {
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Name  string  `json:"name" validate:"required,max=200"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// NewTraveller defines model for NewTraveller.
type NewTraveller struct {
	DestCity   string  `json:"dest_city" validate:"required,max=100"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Name       string  `json:"name" validate:"required,max=200"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	SourceCity string  `json:"source_city" validate:"required,max=100"`
}

// Order defines model for Order.
type Order struct {
	AcceptedAt  *time.Time          `json:"accepted_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	DeliveredAt *time.Time          `json:"delivered_at,omitempty"`
	Dest        Location            `json:"dest"`
	DestCity    string              `json:"dest_city"`
	DistanceKm  float64             `json:"distance_km"`
	Id          openapi_types.UUID  `json:"id"`
	ItemType    ItemType            `json:"item_type"`
	Price       int64               `json:"price"`
	Role        *OrderRole          `json:"role,omitempty"`
	SenderId    openapi_types.UUID  `json:"sender_id"`
	Source      Location            `json:"source"`
	SourceCity  string              `json:"source_city"`
	Status      OrderStatus         `json:"status"`
	TravellerId *openapi_types.UUID `json:"traveller_id,omitempty"`
	WeightKg    float64             `json:"weight_kg"`
}

// OrderRole defines model for Order.Role.
type OrderRole string

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// PriceQuote defines model for PriceQuote.
type PriceQuote struct {
	DistanceKm float64 `json:"distance_km"`
	Price      int64   `json:"price"`
}

// Sender defines model for Sender.
type Sender struct {
	CreatedAt time.Time          `json:"created_at"`
	Email     *string            `json:"email,omitempty"`
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	Phone     *string            `json:"phone,omitempty"`
}

// Traveller defines model for Traveller.
type Traveller struct {
	CreatedAt  time.Time          `json:"created_at"`
	DestCity   string             `json:"dest_city"`
	Email      *string            `json:"email,omitempty"`
	Id         openapi_types.UUID `json:"id"`
	Name       string             `json:"name"`
	Phone      *string            `json:"phone,omitempty"`
	SourceCity string             `json:"source_city"`
}

// OrderID defines model for OrderID.
type OrderID = openapi_types.UUID

// CalculatePriceParams defines parameters for CalculatePrice.
type CalculatePriceParams struct {
	Lat1     float64  `form:"lat1" json:"lat1"`
	Lon1     float64  `form:"lon1" json:"lon1"`
	Lat2     float64  `form:"lat2" json:"lat2"`
	Lon2     float64  `form:"lon2" json:"lon2"`
	WeightKg float64  `form:"weight_kg" json:"weight_kg"`
	ItemType ItemType `form:"item_type" json:"item_type"`
}

// ListAvailableOrdersParams defines parameters for ListAvailableOrders.
type ListAvailableOrdersParams struct {
	SourceCity *string `form:"source_city,omitempty" json:"source_city,omitempty"`
	DestCity   *string `form:"dest_city,omitempty" json:"dest_city,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// FileComplaintJSONRequestBody defines body for FileComplaint for application/json ContentType.
type FileComplaintJSONRequestBody = NewComplaint

// CreateSenderJSONRequestBody defines body for CreateSender for application/json ContentType.
type CreateSenderJSONRequestBody = NewSender

// CreateTravellerJSONRequestBody defines body for CreateTraveller for application/json ContentType.
type CreateTravellerJSONRequestBody = NewTraveller
