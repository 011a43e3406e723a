package commands_test

import (
	"testing"

	"shipmate/internal/core/application/usecases/commands"
	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFileComplaintCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	s := newSender(t, "user-1")
	o := newPendingOrder(t, s.ID())
	cmd, err := commands.NewFileComplaintCommand(kernel.NewUUID(), o.ID(), "user-1", "traveller never showed up")
	require.NoError(t, err)

	senderRepo := new(MockSenderRepository)
	orderRepo := new(MockOrderRepository)
	complaintRepo := new(MockComplaintRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SenderRepository").Return(senderRepo).Once(),
		senderRepo.On("GetByUserID", ctx, "user-1").Return(s, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("ComplaintRepository").Return(complaintRepo).Once(),
		complaintRepo.On("Add", ctx, mock.AnythingOfType("*complaint.Complaint")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	c, err := commands.NewFileComplaintCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, c.OrderID().IsEqual(o.ID()))
	assert.Equal(t, "traveller never showed up", c.Issue())
	uow.AssertExpectations(t)
	complaintRepo.AssertExpectations(t)
}

func TestFileComplaintCommandHandler_Handle_OrderOfAnotherSender(t *testing.T) {
	ctx := t.Context()
	s := newSender(t, "user-1")
	o := newPendingOrder(t, kernel.NewUUID())
	cmd, err := commands.NewFileComplaintCommand(kernel.NewUUID(), o.ID(), "user-1", "late")
	require.NoError(t, err)

	senderRepo := new(MockSenderRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SenderRepository").Return(senderRepo).Once()
	senderRepo.On("GetByUserID", ctx, "user-1").Return(s, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewFileComplaintCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "ComplaintRepository")
}

func TestFileComplaintCommandHandler_Handle_EmptyIssue(t *testing.T) {
	ctx := t.Context()
	s := newSender(t, "user-1")
	o := newPendingOrder(t, s.ID())
	cmd, err := commands.NewFileComplaintCommand(kernel.NewUUID(), o.ID(), "user-1", "   ")
	require.NoError(t, err)

	senderRepo := new(MockSenderRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SenderRepository").Return(senderRepo).Once()
	senderRepo.On("GetByUserID", ctx, "user-1").Return(s, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewFileComplaintCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "issue")
}
