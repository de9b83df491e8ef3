package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGatewayHandler(
	factory commands.OrderUoWFactory,
	notifier ports.OrderNotifier,
) commands.ChangeOrderStatusCommandHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return commands.NewChangeOrderStatusCommandHandler(
		factory, services.NewTransitionAuthority(), notifier, time.Second, logger)
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed, order.Staff, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockOrderNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notified := make(chan ports.OrderStatusChangedEvent, 1)
	notifier.On("NotifyStatusChanged", mock.Anything,
		mock.AnythingOfType("ports.OrderStatusChangedEvent")).
		Run(func(args mock.Arguments) {
			notified <- args.Get(1).(ports.OrderStatusChangedEvent)
		}).
		Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGatewayHandler(factory, notifier)
	next, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Confirmed, next)
	require.Equal(t, order.Confirmed, aggregate.Status())
	require.Len(t, aggregate.History(), 2)

	select {
	case event := <-notified:
		require.Equal(t, order.Pending, event.From)
		require.Equal(t, order.Confirmed, event.To)
		require.Equal(t, order.Staff, event.ChangedBy)
	case <-time.After(time.Second):
		t.Fatal("expected a status change notification")
	}

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_RejectionDoesNotMutate(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed, order.Customer, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockOrderNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGatewayHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrTransitionRejected)

	var rejected *services.TransitionRejectedError
	require.True(t, errors.As(err, &rejected))
	require.Equal(t, services.Forbidden, rejected.Reason)

	require.Equal(t, order.Pending, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "NotifyStatusChanged", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_TerminalState(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	require.NoError(t, aggregate.TransitionTo(order.Cancelled, order.Customer, "", time.Now()))
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed, order.Admin, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGatewayHandler(factory, new(MockOrderNotifier))
	_, err = h.Handle(ctx, cmd)

	var rejected *services.TransitionRejectedError
	require.True(t, errors.As(err, &rejected))
	require.Equal(t, services.TerminalState, rejected.Reason)
}

func TestChangeOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Confirmed, order.Staff, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGatewayHandler(factory, new(MockOrderNotifier))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestChangeOrderStatusCommandHandler_Handle_RefundNoteRequired(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	for _, next := range []order.Status{order.Confirmed, order.InProgress, order.ReadyForHandoff} {
		require.NoError(t, aggregate.TransitionTo(next, order.Staff, "", time.Now()))
	}
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Cancelled, order.Admin, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGatewayHandler(factory, new(MockOrderNotifier))
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.Contains(t, err.Error(), "refundNote")
	require.Equal(t, order.ReadyForHandoff, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed, order.Staff, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockOrderNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).
			Return(errs.NewVersionConflictError("order", aggregate.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGatewayHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "NotifyStatusChanged", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_NotifyFailureIsNotSurfaced(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed, order.Staff, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockOrderNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notified := make(chan struct{})
	notifier.On("NotifyStatusChanged", mock.Anything,
		mock.AnythingOfType("ports.OrderStatusChangedEvent")).
		Run(func(mock.Arguments) { close(notified) }).
		Return(errors.New("broker unavailable")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGatewayHandler(factory, notifier)
	next, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Confirmed, next)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("expected the notification attempt")
	}
	notifier.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_DoesNotWaitForNotifier(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed, order.Staff, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockOrderNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	release := make(chan struct{})
	notifier.On("NotifyStatusChanged", mock.Anything,
		mock.AnythingOfType("ports.OrderStatusChangedEvent")).
		Run(func(mock.Arguments) { <-release }).
		Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGatewayHandler(factory, notifier)

	var next order.Status
	handled := make(chan struct{})
	go func() {
		next, err = h.Handle(ctx, cmd)
		close(handled)
	}()

	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("Handle must not wait for the notifier")
	}
	close(release)

	require.NoError(t, err)
	require.Equal(t, order.Confirmed, next)
}
