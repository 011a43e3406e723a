package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSenderProfileQueryHandler returns errs.ObjectNotFoundError when the user has no
// Sender profile.
type GetSenderProfileQueryHandler struct {
	db *gorm.DB
}

func NewGetSenderProfileQueryHandler(db *gorm.DB) GetSenderProfileQueryHandler {
	return GetSenderProfileQueryHandler{db: db}
}

func (h GetSenderProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (SenderProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return SenderProfileResponse{}, err
	}

	var (
		resp SenderProfileResponse
		id   uuid.UUID
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, user_id, name, phone, email, created_at
		FROM senders
		WHERE user_id = ?
	`, query.UserID()).Row()

	err := row.Scan(&id, &resp.UserID, &resp.Name, &resp.Phone, &resp.Email, &resp.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SenderProfileResponse{}, errs.NewObjectNotFoundError("sender", query.UserID())
	}
	if err != nil {
		return SenderProfileResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return SenderProfileResponse{}, err
	}
	resp.CreatedAt = resp.CreatedAt.UTC()
	return resp, nil
}

// GetTravellerProfileQueryHandler returns errs.ObjectNotFoundError when the user has no
// Traveller profile.
type GetTravellerProfileQueryHandler struct {
	db *gorm.DB
}

func NewGetTravellerProfileQueryHandler(db *gorm.DB) GetTravellerProfileQueryHandler {
	return GetTravellerProfileQueryHandler{db: db}
}

func (h GetTravellerProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (TravellerProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return TravellerProfileResponse{}, err
	}

	var (
		resp TravellerProfileResponse
		id   uuid.UUID
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, user_id, name, phone, email, source_city, dest_city, created_at
		FROM travellers
		WHERE user_id = ?
	`, query.UserID()).Row()

	err := row.Scan(
		&id,
		&resp.UserID,
		&resp.Name,
		&resp.Phone,
		&resp.Email,
		&resp.SourceCity,
		&resp.DestCity,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TravellerProfileResponse{}, errs.NewObjectNotFoundError("traveller", query.UserID())
	}
	if err != nil {
		return TravellerProfileResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return TravellerProfileResponse{}, err
	}
	resp.CreatedAt = resp.CreatedAt.UTC()
	return resp, nil
}
