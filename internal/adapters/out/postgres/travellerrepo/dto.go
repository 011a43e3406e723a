// Package travellerrepo persists Traveller profiles, one per user.
package travellerrepo

import (
	"time"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/traveller"

	"github.com/google/uuid"
)

const userIDConstraint = "idx_travellers_user_id"

type TravellerDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_travellers_user_id"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Phone      string    `gorm:"type:varchar(32)"`
	Email      string    `gorm:"type:varchar(254)"`
	SourceCity string    `gorm:"type:varchar(100);not null"`
	DestCity   string    `gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (TravellerDTO) TableName() string {
	return "travellers"
}

func fromDomain(tr *traveller.Traveller) TravellerDTO {
	return TravellerDTO{
		ID:         tr.ID().Bytes(),
		UserID:     tr.UserID(),
		Name:       tr.Name(),
		Phone:      tr.Contact().Phone(),
		Email:      tr.Contact().Email(),
		SourceCity: tr.SourceCity(),
		DestCity:   tr.DestCity(),
		CreatedAt:  tr.CreatedAt(),
	}
}

func toDomain(dto TravellerDTO) (*traveller.Traveller, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	contact, err := kernel.NewContact(dto.Phone, dto.Email)
	if err != nil {
		return nil, err
	}

	return traveller.NewTraveller(id, dto.UserID, dto.Name, contact, dto.SourceCity, dto.DestCity, dto.CreatedAt)
}
