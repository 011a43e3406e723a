// Package complaintrepo persists complaints filed by senders against their orders.
package complaintrepo

import (
	"time"

	"shipmate/internal/core/domain/model/complaint"

	"github.com/google/uuid"
)

type ComplaintDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null"`
	Issue     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ComplaintDTO) TableName() string {
	return "complaints"
}

func fromDomain(c *complaint.Complaint) ComplaintDTO {
	return ComplaintDTO{
		ID:        c.ID().Bytes(),
		OrderID:   c.OrderID().Bytes(),
		SenderID:  c.SenderID().Bytes(),
		Issue:     c.Issue(),
		CreatedAt: c.CreatedAt(),
	}
}
