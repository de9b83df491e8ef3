package commands_test

import (
	"errors"
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubmitCommand(t *testing.T, selections ...commands.ServiceSelection) commands.SubmitOrderCommand {
	t.Helper()

	pickup, delivery := newWindows(t)
	cmd, err := commands.NewSubmitOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		selections,
		"12 Main St", "",
		pickup, delivery,
		order.Pickup, false,
	)
	require.NoError(t, err)
	return cmd
}

func TestSubmitOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	definition := newWashFoldDefinition(t, true)
	cmd := newSubmitCommand(t, newSelection(t, definition.ID(), 2, "stain-treatment"))

	orderRepo := new(MockOrderRepository)
	serviceRepo := new(MockServiceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceRepository").Return(serviceRepo).Once(),
		serviceRepo.On("Get", mock.Anything, definition.ID()).Return(definition, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	serviceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)

	added := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	require.Equal(t, order.Pending, added.Status())
	require.Len(t, added.Items(), 1)
	total, err := added.Total()
	require.NoError(t, err)
	require.Equal(t, int64(500*2+250), total.Cents())
}

func TestSubmitOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory)

	h := commands.NewSubmitOrderCommandHandler(factory)
	err := h.Handle(ctx, commands.SubmitOrderCommand{})

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestSubmitOrderCommandHandler_Handle_ServiceNotFound(t *testing.T) {
	ctx := t.Context()
	serviceID := kernel.NewUUID()
	cmd := newSubmitCommand(t, newSelection(t, serviceID, 1))

	serviceRepo := new(MockServiceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceRepository").Return(serviceRepo).Once(),
		serviceRepo.On("Get", mock.Anything, serviceID).
			Return(nil, errs.NewObjectNotFoundError("serviceId", serviceID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitOrderCommandHandler_Handle_InactiveService(t *testing.T) {
	ctx := t.Context()
	definition := newWashFoldDefinition(t, false)
	cmd := newSubmitCommand(t, newSelection(t, definition.ID(), 1))

	serviceRepo := new(MockServiceRepository)
	serviceRepo.On("Get", mock.Anything, definition.ID()).Return(definition, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ServiceRepository").Return(serviceRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.Contains(t, err.Error(), "not available for ordering")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitOrderCommandHandler_Handle_UnknownModifierCode(t *testing.T) {
	ctx := t.Context()
	definition := newWashFoldDefinition(t, true)
	cmd := newSubmitCommand(t, newSelection(t, definition.ID(), 1, "perfume"))

	serviceRepo := new(MockServiceRepository)
	serviceRepo.On("Get", mock.Anything, definition.ID()).Return(definition, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ServiceRepository").Return(serviceRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSubmitOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newSubmitCommand(t, newSelection(t, kernel.NewUUID(), 1))

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewSubmitOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
