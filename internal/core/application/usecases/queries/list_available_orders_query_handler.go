package queries

import (
	"context"
	"strings"

	"shipmate/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type ListAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableOrdersQueryHandler(db *gorm.DB) ListAvailableOrdersQueryHandler {
	return ListAvailableOrdersQueryHandler{db: db}
}

// Handle never returns an order that has a traveller.
func (h ListAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sql strings.Builder
	sql.WriteString("SELECT ")
	sql.WriteString(orderColumns)
	sql.WriteString(`
		FROM orders o
		WHERE o.status = ? AND o.traveller_id IS NULL`)
	args := []any{order.Pending.String()}

	if query.SourceCity() != "" {
		sql.WriteString(" AND lower(o.source_city) = lower(?)")
		args = append(args, query.SourceCity())
	}
	if query.DestCity() != "" {
		sql.WriteString(" AND lower(o.dest_city) = lower(?)")
		args = append(args, query.DestCity())
	}
	sql.WriteString(" ORDER BY " + newestFirst)

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}

	return collectOrders(rows, false)
}
