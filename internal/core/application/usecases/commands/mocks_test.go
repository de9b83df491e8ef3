package commands_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Add(ctx context.Context, definition *service.ServiceDefinition) error {
	args := m.Called(ctx, definition)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, definition *service.ServiceDefinition) error {
	args := m.Called(ctx, definition)
	return args.Error(0)
}

func (m *MockServiceRepository) Get(ctx context.Context, id kernel.UUID) (*service.ServiceDefinition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ServiceDefinition), args.Error(1)
}

func (m *MockServiceRepository) GetAllActive(ctx context.Context) ([]*service.ServiceDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*service.ServiceDefinition), args.Error(1)
}

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

func (m *MockUoW) ServiceRepository() ports.ServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderNotifier struct{ mock.Mock }

func (m *MockOrderNotifier) NotifyStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newWashFoldDefinition(t *testing.T, active bool) *service.ServiceDefinition {
	t.Helper()

	stain, err := service.NewModifierDefinition("stain-treatment", "Stain treatment", kernel.MustNewMoney(250))
	require.NoError(t, err)
	express, err := service.NewModifierDefinition("express", "Express handling", kernel.MustNewMoney(300))
	require.NoError(t, err)

	definition, err := service.NewServiceDefinition(
		kernel.NewUUID(),
		"Wash & Fold",
		service.WashFold,
		kernel.MustNewMoney(500),
		true,
		active,
		[]service.ModifierDefinition{stain, express},
	)
	require.NoError(t, err)
	return definition
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(
		kernel.NewUUID(), kernel.NewUUID(), "Wash & Fold", kernel.MustNewMoney(500), 2, nil)
	require.NoError(t, err)

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	pickup, err := kernel.NewTimeWindow(base, base.Add(2*time.Hour))
	require.NoError(t, err)
	delivery, err := kernel.NewTimeWindow(base.Add(48*time.Hour), base.Add(50*time.Hour))
	require.NoError(t, err)
	terms, err := order.NewDeliveryTerms(order.Pickup, false)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{*item},
		"12 Main St", "", pickup, delivery, terms, base.Add(-24*time.Hour))
	require.NoError(t, err)
	return aggregate
}

func newSelection(t *testing.T, serviceID kernel.UUID, quantity int, codes ...string) commands.ServiceSelection {
	t.Helper()

	selection, err := commands.NewServiceSelection(serviceID, quantity, codes)
	require.NoError(t, err)
	return selection
}

func newWindows(t *testing.T) (kernel.TimeWindow, kernel.TimeWindow) {
	t.Helper()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	pickup, err := kernel.NewTimeWindow(base, base.Add(2*time.Hour))
	require.NoError(t, err)
	delivery, err := kernel.NewTimeWindow(base.Add(48*time.Hour), base.Add(50*time.Hour))
	require.NoError(t, err)
	return pickup, delivery
}
