package commands_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) GetAll(ctx context.Context) (*order.List, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).(*order.List)
	return list, args.Error(1)
}

func (m *MockOrderRepository) SaveAll(ctx context.Context, orders *order.List) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

type MockPendingOrderUoW struct{ mock.Mock }

func (m *MockPendingOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPendingOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPendingOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPendingOrderUoW) PendingOrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockPendingOrderUoWFactory struct{ mock.Mock }

func (m *MockPendingOrderUoWFactory) Create() commands.PendingOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PendingOrderUoW)
}

type MockUoW struct{ MockPendingOrderUoW }

func (m *MockUoW) FulfilledOrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func testItem(t *testing.T, name string, price, quantity int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(name, price, quantity)
	require.NoError(t, err)
	return item
}

func testOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.MustNewOrderID(id), "Guest "+id, []order.LineItem{testItem(t, "Tea", 2500, 2)})
	require.NoError(t, err)
	return o
}
