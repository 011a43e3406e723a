// Package senderrepo persists Sender profiles. A unique index on user_id keeps one
// profile per user even when two creations race past the application check.
package senderrepo

import (
	"time"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/sender"

	"github.com/google/uuid"
)

const userIDConstraint = "idx_senders_user_id"

type SenderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_senders_user_id"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Phone     string    `gorm:"type:varchar(32)"`
	Email     string    `gorm:"type:varchar(254)"`
	CreatedAt time.Time `gorm:"not null"`
}

func (SenderDTO) TableName() string {
	return "senders"
}

func fromDomain(s *sender.Sender) SenderDTO {
	return SenderDTO{
		ID:        s.ID().Bytes(),
		UserID:    s.UserID(),
		Name:      s.Name(),
		Phone:     s.Contact().Phone(),
		Email:     s.Contact().Email(),
		CreatedAt: s.CreatedAt(),
	}
}

func toDomain(dto SenderDTO) (*sender.Sender, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	contact, err := kernel.NewContact(dto.Phone, dto.Email)
	if err != nil {
		return nil, err
	}

	return sender.NewSender(id, dto.UserID, dto.Name, contact, dto.CreatedAt)
}
