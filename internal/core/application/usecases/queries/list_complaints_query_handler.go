package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/sender"
	"shipmate/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListComplaintsQueryHandler applies the visibility rules of filing a complaint: a user
// without a Sender profile gets errs.PreconditionFailedError, a sender asking about an
// order of someone else gets errs.ObjectNotFoundError.
type ListComplaintsQueryHandler struct {
	db *gorm.DB
}

func NewListComplaintsQueryHandler(db *gorm.DB) ListComplaintsQueryHandler {
	return ListComplaintsQueryHandler{db: db}
}

func (h ListComplaintsQueryHandler) Handle(ctx context.Context, query ListComplaintsQuery) ([]ComplaintResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var senderID uuid.UUID
	err := db.Raw(`SELECT id FROM senders WHERE user_id = ?`, query.UserID()).Row().Scan(&senderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewPreconditionFailedErrorWithCause(
			sender.ReasonProfileRequired,
			errs.NewObjectNotFoundError("sender", query.UserID()),
		)
	}
	if err != nil {
		return nil, err
	}

	var owned int64
	err = db.Raw(`
		SELECT count(*)
		FROM orders
		WHERE id = ? AND sender_id = ?
	`, query.OrderID().Bytes(), senderID).Scan(&owned).Error
	if err != nil {
		return nil, err
	}
	if owned == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	rows, err := db.Raw(`
		SELECT id, order_id, issue, created_at
		FROM complaints
		WHERE order_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := make([]ComplaintResponse, 0)
	for rows.Next() {
		var (
			resp        ComplaintResponse
			id, orderID uuid.UUID
		)
		if err = rows.Scan(&id, &orderID, &resp.Issue, &resp.CreatedAt); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		resp.CreatedAt = resp.CreatedAt.UTC()
		complaints = append(complaints, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}
