package commands_test

import (
	"testing"

	"shipmate/internal/core/application/usecases/commands"
	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/core/domain/model/traveller"
	"shipmate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptOrderCommand(t *testing.T) {
	_, err := commands.NewAcceptOrderCommand(kernel.UUID{}, " ")

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tr := newTraveller(t, "user-2")
	o := newPendingOrder(t, kernel.NewUUID())
	cmd, err := commands.NewAcceptOrderCommand(o.ID(), "user-2")
	require.NoError(t, err)

	travellerRepo := new(MockTravellerRepository)
	senderRepo := new(MockSenderRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravellerRepository").Return(travellerRepo).Once(),
		travellerRepo.On("GetByUserID", ctx, "user-2").Return(tr, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("SenderRepository").Return(senderRepo).Once(),
		senderRepo.On("GetByUserID", ctx, "user-2").Return(nil, errs.NewObjectNotFoundError("sender", "user-2")).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	accepted, err := commands.NewAcceptOrderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, accepted.Status())
	assert.True(t, accepted.TravellerID().IsEqual(tr.ID()))
	require.Len(t, accepted.DomainEvents(), 1)
	assert.Equal(t, order.EventAccepted, accepted.DomainEvents()[0].Type)
	travellerRepo.AssertExpectations(t)
	senderRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()
	tr := newTraveller(t, "user-2")
	o := newPendingOrder(t, kernel.NewUUID())
	require.NoError(t, o.Accept(kernel.NewUUID(), o.CreatedAt()))
	cmd, err := commands.NewAcceptOrderCommand(o.ID(), "user-2")
	require.NoError(t, err)

	travellerRepo := new(MockTravellerRepository)
	senderRepo := new(MockSenderRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravellerRepository").Return(travellerRepo).Once()
	travellerRepo.On("GetByUserID", ctx, "user-2").Return(tr, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("SenderRepository").Return(senderRepo).Once()
	senderRepo.On("GetByUserID", ctx, "user-2").Return(nil, errs.NewObjectNotFoundError("sender", "user-2")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewAcceptOrderCommandHandler(factory).Handle(ctx, cmd)

	var conflict *errs.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, order.ReasonOrderNotAvailable, conflict.Reason)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	tr := newTraveller(t, "user-2")
	o := newPendingOrder(t, kernel.NewUUID())
	cmd, err := commands.NewAcceptOrderCommand(o.ID(), "user-2")
	require.NoError(t, err)

	lost := errs.NewConflictError("order", o.ID().String(), order.ReasonOrderNotAvailable)
	travellerRepo := new(MockTravellerRepository)
	senderRepo := new(MockSenderRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravellerRepository").Return(travellerRepo).Once()
	travellerRepo.On("GetByUserID", ctx, "user-2").Return(tr, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("SenderRepository").Return(senderRepo).Once()
	senderRepo.On("GetByUserID", ctx, "user-2").Return(nil, errs.NewObjectNotFoundError("sender", "user-2")).Once()
	orderRepo.On("Update", ctx, o).Return(lost).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewAcceptOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_NoTravellerProfile(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAcceptOrderCommand(kernel.NewUUID(), "user-2")
	require.NoError(t, err)

	travellerRepo := new(MockTravellerRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravellerRepository").Return(travellerRepo).Once()
	travellerRepo.On("GetByUserID", ctx, "user-2").Return(nil, errs.NewObjectNotFoundError("traveller", "user-2")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewAcceptOrderCommandHandler(factory).Handle(ctx, cmd)

	var precondition *errs.PreconditionFailedError
	require.ErrorAs(t, err, &precondition)
	assert.Equal(t, traveller.ReasonProfileRequired, precondition.Reason)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestAcceptOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(orderID, "user-2")
	require.NoError(t, err)

	travellerRepo := new(MockTravellerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravellerRepository").Return(travellerRepo).Once()
	travellerRepo.On("GetByUserID", ctx, "user-2").Return(newTraveller(t, "user-2"), nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewAcceptOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAcceptOrderCommandHandler_Handle_OwnOrder(t *testing.T) {
	ctx := t.Context()
	s := newSender(t, "user-1")
	tr := newTraveller(t, "user-1")
	o := newPendingOrder(t, s.ID())
	cmd, err := commands.NewAcceptOrderCommand(o.ID(), "user-1")
	require.NoError(t, err)

	travellerRepo := new(MockTravellerRepository)
	senderRepo := new(MockSenderRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravellerRepository").Return(travellerRepo).Once()
	travellerRepo.On("GetByUserID", ctx, "user-1").Return(tr, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("SenderRepository").Return(senderRepo).Once()
	senderRepo.On("GetByUserID", ctx, "user-1").Return(s, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewAcceptOrderCommandHandler(factory).Handle(ctx, cmd)

	var conflict *errs.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, order.ReasonOwnOrder, conflict.Reason)
	assert.Equal(t, order.Pending, o.Status())
	assert.Empty(t, o.DomainEvents())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_SenderOfAnotherOrder(t *testing.T) {
	ctx := t.Context()
	tr := newTraveller(t, "user-1")
	o := newPendingOrder(t, kernel.NewUUID())
	cmd, err := commands.NewAcceptOrderCommand(o.ID(), "user-1")
	require.NoError(t, err)

	travellerRepo := new(MockTravellerRepository)
	senderRepo := new(MockSenderRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravellerRepository").Return(travellerRepo).Once()
	travellerRepo.On("GetByUserID", ctx, "user-1").Return(tr, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("SenderRepository").Return(senderRepo).Once()
	senderRepo.On("GetByUserID", ctx, "user-1").Return(newSender(t, "user-1"), nil).Once()
	orderRepo.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	accepted, err := commands.NewAcceptOrderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, accepted.Status())
	uow.AssertExpectations(t)
}
