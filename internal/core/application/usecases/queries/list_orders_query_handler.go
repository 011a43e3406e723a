package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the matching orders, newest first, as one eager slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		sql  string
		args []any
	)

	switch query.owner {
	case ownerSender:
		sql = fmt.Sprintf(`
			SELECT %s, 'sender'
			FROM orders o
			WHERE o.sender_id = ?
			ORDER BY %s`, orderColumns, newestFirst)
		args = []any{query.ownerID.Bytes()}
	case ownerTraveller:
		sql = fmt.Sprintf(`
			SELECT %s, 'traveller'
			FROM orders o
			WHERE o.traveller_id = ?
			ORDER BY %s`, orderColumns, newestFirst)
		args = []any{query.ownerID.Bytes()}
	default:
		sql = fmt.Sprintf(`
			SELECT %s,
				CASE WHEN s.user_id = ? THEN 'sender' ELSE 'traveller' END
			FROM orders o
			LEFT JOIN senders s ON s.id = o.sender_id
			LEFT JOIN travellers t ON t.id = o.traveller_id
			WHERE s.user_id = ? OR t.user_id = ?
			ORDER BY %s`, orderColumns, newestFirst)
		args = []any{query.userID, query.userID, query.userID}
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}

	return collectOrders(rows, true)
}
