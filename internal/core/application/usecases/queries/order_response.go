// Package queries contains the read side: raw SQL over *gorm.DB returning flat response
// structs. Queries never load aggregates and never write.
package queries

import (
	"database/sql"
	"strings"
	"time"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderRole tells which side of an order the caller is on.
type OrderRole string

const (
	RoleSender    OrderRole = "sender"
	RoleTraveller OrderRole = "traveller"
)

// OrderResponse is the read model of an order. Role is set by queries answered relative
// to a caller and empty otherwise.
type OrderResponse struct {
	ID          kernel.UUID
	SenderID    kernel.UUID
	TravellerID *kernel.UUID
	SourceCity  string
	DestCity    string
	Source      kernel.Location
	Dest        kernel.Location
	DistanceKm  float64
	WeightKg    float64
	ItemType    order.ItemType
	Price       int64
	Status      order.Status
	CreatedAt   time.Time
	AcceptedAt  *time.Time
	DeliveredAt *time.Time
	Role        OrderRole
}

const orderColumns = `
	o.id,
	o.sender_id,
	o.traveller_id,
	o.source_city,
	o.dest_city,
	o.source_lat,
	o.source_lon,
	o.dest_lat,
	o.dest_lon,
	o.distance_km,
	o.weight_kg,
	o.item_type,
	o.price,
	o.status,
	o.created_at,
	o.accepted_at,
	o.delivered_at`

// newestFirst is the listing order of every order query.
const newestFirst = "o.created_at DESC, o.id DESC"

// scanOrder reads one row selected with orderColumns, followed by the role column when
// withRole is set.
func scanOrder(rows *sql.Rows, withRole bool) (OrderResponse, error) {
	var (
		resp                    OrderResponse
		id, senderID            uuid.UUID
		travellerID             uuid.NullUUID
		sourceLat, sourceLon    float64
		destLat, destLon        float64
		itemType, status, role  string
		acceptedAt, deliveredAt sql.NullTime
	)

	dest := []any{
		&id,
		&senderID,
		&travellerID,
		&resp.SourceCity,
		&resp.DestCity,
		&sourceLat,
		&sourceLon,
		&destLat,
		&destLon,
		&resp.DistanceKm,
		&resp.WeightKg,
		&itemType,
		&resp.Price,
		&status,
		&resp.CreatedAt,
		&acceptedAt,
		&deliveredAt,
	}
	if withRole {
		dest = append(dest, &role)
	}

	if err := rows.Scan(dest...); err != nil {
		return OrderResponse{}, err
	}

	var err error
	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
		return OrderResponse{}, err
	}
	if travellerID.Valid {
		tID, tErr := kernel.UUIDFromBytes(travellerID.UUID[:])
		if tErr != nil {
			return OrderResponse{}, tErr
		}
		resp.TravellerID = &tID
	}

	if resp.Source, err = kernel.NewLocation(sourceLat, sourceLon); err != nil {
		return OrderResponse{}, err
	}
	if resp.Dest, err = kernel.NewLocation(destLat, destLon); err != nil {
		return OrderResponse{}, err
	}
	if resp.ItemType, err = order.ParseItemType(itemType); err != nil {
		return OrderResponse{}, err
	}
	if resp.Status, err = order.ParseStatus(status); err != nil {
		return OrderResponse{}, err
	}

	resp.CreatedAt = resp.CreatedAt.UTC()
	resp.AcceptedAt = utcOrNil(acceptedAt)
	resp.DeliveredAt = utcOrNil(deliveredAt)
	resp.Role = OrderRole(role)
	return resp, nil
}

func collectOrders(rows *sql.Rows, withRole bool) ([]OrderResponse, error) {
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		o, err := scanOrder(rows, withRole)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func utcOrNil(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func normalizeUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errs.NewValueIsRequiredError("user_id")
	}
	return userID, nil
}
