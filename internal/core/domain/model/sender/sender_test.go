package sender_test

import (
	"testing"
	"time"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/sender"
	"shipmate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSender(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	phoneOnly, err := kernel.NewContact("+919876543210", "")
	require.NoError(t, err)

	t.Run("valid sender", func(t *testing.T) {
		id := kernel.NewUUID()

		s, err := sender.NewSender(id, " auth0|42 ", " Asha ", phoneOnly, now)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "auth0|42", s.UserID())
		assert.Equal(t, "Asha", s.Name())
		assert.Equal(t, "+919876543210", s.Contact().Phone())
		assert.Equal(t, now, s.CreatedAt())
	})

	t.Run("contact is mandatory", func(t *testing.T) {
		s, err := sender.NewSender(kernel.NewUUID(), "user-1", "Asha", kernel.Contact{}, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "phone or email")
	})

	t.Run("all errors joined", func(t *testing.T) {
		_, err := sender.NewSender(kernel.UUID{}, " ", "", kernel.Contact{}, time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "user_id")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "created_at")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var s sender.Sender
		assert.Equal(t, sender.ErrSenderIsNotConstructed, s.Validate())
	})
}
