package queries

import (
	"context"
	"fmt"

	"shipmate/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s,
			CASE WHEN s.user_id = ? THEN 'sender' ELSE 'traveller' END
		FROM orders o
		LEFT JOIN senders s ON s.id = o.sender_id
		LEFT JOIN travellers t ON t.id = o.traveller_id
		WHERE o.id = ? AND (s.user_id = ? OR t.user_id = ?)
	`, orderColumns), query.UserID(), query.OrderID().Bytes(), query.UserID(), query.UserID()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}

	orders, err := collectOrders(rows, true)
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return orders[0], nil
}
