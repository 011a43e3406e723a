package commands_test

import (
	"errors"
	"testing"

	"shipmate/internal/core/application/usecases/commands"
	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/core/domain/model/sender"
	"shipmate/internal/core/domain/services"
	"shipmate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCalculator(t *testing.T) services.PriceCalculator {
	t.Helper()
	calc, err := services.NewPriceCalculator(services.DefaultTariff())
	require.NoError(t, err)
	return calc
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(id, "user-1", mumbaiToDelhi, 5, "Documents")

		require.NoError(t, err)
		assert.Equal(t, id, cmd.OrderID())
		assert.Equal(t, "Mumbai", cmd.Route().SourceCity())
		assert.InDelta(t, 1153.24, cmd.Route().DistanceKm(), 0.001)
		assert.Equal(t, order.Documents, cmd.Parcel().ItemType())
	})

	t.Run("invalid coordinates and weight", func(t *testing.T) {
		route := mumbaiToDelhi
		route.SourceLat = 91
		route.DestLon = -181

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "user-1", route, -2, "documents")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
		assert.Contains(t, err.Error(), "weight_kg")
	})

	t.Run("unknown item type", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "user-1", mumbaiToDelhi, 1, "glass")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "item_type")
	})

	t.Run("missing cities", func(t *testing.T) {
		route := mumbaiToDelhi
		route.SourceCity = " "

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "user-1", route, 1, "food")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "user-1", mumbaiToDelhi, 5, "documents")
	require.NoError(t, err)
	s := newSender(t, "user-1")

	senderRepo := new(MockSenderRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SenderRepository").Return(senderRepo).Once(),
		senderRepo.On("GetByUserID", ctx, "user-1").Return(s, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	o, err := commands.NewCreateOrderCommandHandler(factory, newCalculator(t)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, o.SenderID().IsEqual(s.ID()))
	assert.Equal(t, order.Pending, o.Status())
	assert.Nil(t, o.TravellerID())
	assert.Equal(t, int64(324), o.Price())
	senderRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoSenderProfile(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "user-1", mumbaiToDelhi, 5, "documents")
	require.NoError(t, err)

	senderRepo := new(MockSenderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SenderRepository").Return(senderRepo).Once()
	senderRepo.On("GetByUserID", ctx, "user-1").Return(nil, errs.NewObjectNotFoundError("sender", "user-1")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	o, err := commands.NewCreateOrderCommandHandler(factory, newCalculator(t)).Handle(ctx, cmd)

	assert.Nil(t, o)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	var precondition *errs.PreconditionFailedError
	require.ErrorAs(t, err, &precondition)
	assert.Equal(t, sender.ReasonProfileRequired, precondition.Reason)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "user-1", mumbaiToDelhi, 5, "documents")
	require.NoError(t, err)

	senderRepo := new(MockSenderRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SenderRepository").Return(senderRepo).Once()
	senderRepo.On("GetByUserID", ctx, "user-1").Return(newSender(t, "user-1"), nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreateOrderCommandHandler(factory, newCalculator(t)).Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "user-1", mumbaiToDelhi, 5, "documents")
	require.NoError(t, err)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreateOrderCommandHandler(factory, newCalculator(t)).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}
