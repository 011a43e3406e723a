package commands_test

import (
	"context"
	"time"

	"shipmate/internal/core/application/usecases/commands"
	"shipmate/internal/core/domain/model/complaint"
	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/core/domain/model/sender"
	"shipmate/internal/core/domain/model/traveller"
	"shipmate/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetStalePending(
	ctx context.Context,
	createdBefore time.Time,
	limit int,
) ([]*order.Order, error) {
	args := m.Called(ctx, createdBefore, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockSenderRepository struct{ mock.Mock }

func (m *MockSenderRepository) Add(ctx context.Context, s *sender.Sender) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSenderRepository) GetByUserID(ctx context.Context, userID string) (*sender.Sender, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sender.Sender), args.Error(1)
}

type MockTravellerRepository struct{ mock.Mock }

func (m *MockTravellerRepository) Add(ctx context.Context, tr *traveller.Traveller) error {
	args := m.Called(ctx, tr)
	return args.Error(0)
}

func (m *MockTravellerRepository) GetByUserID(ctx context.Context, userID string) (*traveller.Traveller, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*traveller.Traveller), args.Error(1)
}

type MockComplaintRepository struct{ mock.Mock }

func (m *MockComplaintRepository) Add(ctx context.Context, c *complaint.Complaint) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockUoW satisfies every narrowed unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) SenderRepository() ports.SenderRepository {
	args := m.Called()
	return args.Get(0).(ports.SenderRepository)
}

func (m *MockUoW) TravellerRepository() ports.TravellerRepository {
	args := m.Called()
	return args.Get(0).(ports.TravellerRepository)
}

func (m *MockUoW) ComplaintRepository() ports.ComplaintRepository {
	args := m.Called()
	return args.Get(0).(ports.ComplaintRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockSenderUoWFactory struct{ mock.Mock }

func (m *MockSenderUoWFactory) Create() commands.SenderUoW {
	args := m.Called()
	return args.Get(0).(commands.SenderUoW)
}

type MockTravellerUoWFactory struct{ mock.Mock }

func (m *MockTravellerUoWFactory) Create() commands.TravellerUoW {
	args := m.Called()
	return args.Get(0).(commands.TravellerUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
