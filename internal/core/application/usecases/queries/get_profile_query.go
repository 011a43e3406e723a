package queries

import (
	"errors"
	"time"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery looks up the profile a user owns. The same query serves the sender and
// the traveller handlers.
type GetProfileQuery struct { //nolint:recvcheck //using for validation
	userID string

	guard guard.ConstructorGuard
}

func NewGetProfileQuery(userID string) (GetProfileQuery, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return GetProfileQuery{}, err
	}
	return GetProfileQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

func (q GetProfileQuery) UserID() string {
	return q.userID
}

type SenderProfileResponse struct {
	ID        kernel.UUID
	UserID    string
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
}

type TravellerProfileResponse struct {
	ID         kernel.UUID
	UserID     string
	Name       string
	Phone      string
	Email      string
	SourceCity string
	DestCity   string
	CreatedAt  time.Time
}
