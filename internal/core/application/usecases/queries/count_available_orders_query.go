package queries

import (
	"context"
	"errors"

	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountAvailableOrdersQueryIsNotConstructed = errors.New(
	"CountAvailableOrdersQuery must be created via NewCountAvailableOrdersQuery constructor",
)

// CountAvailableOrdersQuery counts the available pool for the metrics gauge.
type CountAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewCountAvailableOrdersQuery() CountAvailableOrdersQuery {
	return CountAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q CountAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountAvailableOrdersQueryIsNotConstructed)
}

type CountAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

func NewCountAvailableOrdersQueryHandler(db *gorm.DB) CountAvailableOrdersQueryHandler {
	return CountAvailableOrdersQueryHandler{db: db}
}

func (h CountAvailableOrdersQueryHandler) Handle(ctx context.Context, query CountAvailableOrdersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM orders
		WHERE status = ? AND traveller_id IS NULL
	`, order.Pending.String()).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
