package commands_test

import (
	"errors"
	"testing"

	"shipmate/internal/core/application/usecases/commands"
	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/sender"
	"shipmate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateSenderProfileCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateSenderProfileCommand(id, " user-1 ", " Asha ", "", "asha@example.com")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.SenderID())
		assert.Equal(t, "user-1", cmd.UserID())
		assert.Equal(t, "Asha", cmd.Name())
		assert.Equal(t, "asha@example.com", cmd.Contact().Email())
	})

	t.Run("invalid input joins errors", func(t *testing.T) {
		_, err := commands.NewCreateSenderProfileCommand(kernel.UUID{}, "", "", "abc", "")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "user_id")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "phone")
	})

	t.Run("phone or email is required", func(t *testing.T) {
		_, err := commands.NewCreateSenderProfileCommand(kernel.NewUUID(), "user-1", "Asha", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCreateSenderProfileCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSenderProfileCommand(kernel.NewUUID(), "user-1", "Asha", "+919876543210", "")
	require.NoError(t, err)

	repo := new(MockSenderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SenderRepository").Return(repo).Once(),
		repo.On("GetByUserID", ctx, "user-1").Return(nil, errs.NewObjectNotFoundError("sender", "user-1")).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*sender.Sender")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSenderUoWFactory)
	factory.On("Create").Return(uow).Once()

	s, err := commands.NewCreateSenderProfileCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, s.ID().IsEqual(cmd.SenderID()))
	assert.Equal(t, "user-1", s.UserID())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateSenderProfileCommandHandler_Handle_AlreadyExists(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSenderProfileCommand(kernel.NewUUID(), "user-1", "Asha", "+919876543210", "")
	require.NoError(t, err)

	repo := new(MockSenderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SenderRepository").Return(repo).Once(),
		repo.On("GetByUserID", ctx, "user-1").Return(newSender(t, "user-1"), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSenderUoWFactory)
	factory.On("Create").Return(uow).Once()

	s, err := commands.NewCreateSenderProfileCommandHandler(factory).Handle(ctx, cmd)

	assert.Nil(t, s)
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
	var exists *errs.AlreadyExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, sender.ReasonProfileAlreadyExists, exists.Reason)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateSenderProfileCommandHandler_Handle_RacingDuplicate(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSenderProfileCommand(kernel.NewUUID(), "user-1", "Asha", "+919876543210", "")
	require.NoError(t, err)

	duplicate := errs.NewAlreadyExistsError("sender", "user-1", sender.ReasonProfileAlreadyExists)
	repo := new(MockSenderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SenderRepository").Return(repo).Once()
	repo.On("GetByUserID", ctx, "user-1").Return(nil, errs.NewObjectNotFoundError("sender", "user-1")).Once()
	repo.On("Add", ctx, mock.Anything).Return(duplicate).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockSenderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreateSenderProfileCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyExists)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateSenderProfileCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSenderProfileCommand(kernel.NewUUID(), "user-1", "Asha", "+919876543210", "")
	require.NoError(t, err)

	repo := new(MockSenderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SenderRepository").Return(repo).Once()
	repo.On("GetByUserID", ctx, "user-1").Return(nil, errors.New("connection reset")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockSenderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreateSenderProfileCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "connection reset")
}

func TestCreateSenderProfileCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockSenderUoWFactory)

	_, err := commands.NewCreateSenderProfileCommandHandler(factory).Handle(t.Context(), commands.CreateSenderProfileCommand{})

	require.ErrorIs(t, err, commands.ErrCreateSenderProfileCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
