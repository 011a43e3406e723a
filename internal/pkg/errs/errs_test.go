package errs_test

import (
	"errors"
	"testing"

	"shipmate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidErrorWithCause("item_type", errors.New("glass is not supported"))

	assert.Equal(t, "item_type", err.ParamName)
	assert.Equal(t, "value is invalid: item_type (cause: glass is not supported)", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 91.5, -90.0, 90.0)

		assert.Equal(t, 91.5, err.Value)
		assert.Equal(t, "value is invalid: 91.5 is latitude, min value is -90, max value is 90", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("strips newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("name")

	require.NoError(t, err.Cause)
	assert.Equal(t, "value is required: name", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestAlreadyExistsError(t *testing.T) {
	err := errs.NewAlreadyExistsError("sender", "user-1", "profile_already_exists")

	assert.Equal(t, "profile_already_exists", err.Reason)
	assert.Equal(t, "object already exists: param is: sender, ID is: user-1", err.Error())
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestConflictError(t *testing.T) {
	t.Run("reason is rendered readable", func(t *testing.T) {
		err := errs.NewConflictError("order", "42", "order_not_available")

		assert.Equal(t, "conflict: order 42 is order not available", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("errors.As exposes the reason", func(t *testing.T) {
		wrapped := errors.Join(errors.New("accept failed"), errs.NewConflictError("order", "42", "order_not_available"))

		var conflict *errs.ConflictError
		require.ErrorAs(t, wrapped, &conflict)
		assert.Equal(t, "order_not_available", conflict.Reason)
	})
}

func TestPreconditionFailedError(t *testing.T) {
	err := errs.NewPreconditionFailedError("traveller_profile_required")

	assert.Equal(t, "precondition failed: traveller_profile_required", err.Error())
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.NotErrorIs(t, err, errs.ErrConflict)
}
