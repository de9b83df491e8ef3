package commands

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler is the order update gateway. It runs the
// load-decide-write sequence as one transaction and publishes a status
// change event after the commit.
//
// Concurrency is handled with an optimistic version check in the repository:
// two racing requests on the same order never interleave, the later one
// fails with a version conflict and must reload. Requests on different
// orders proceed independently.
type ChangeOrderStatusCommandHandler struct {
	uowFactory    OrderUoWFactory
	authority     services.TransitionAuthority
	notifier      ports.OrderNotifier
	notifyTimeout time.Duration
	logger        *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates the gateway handler.
// notifyTimeout bounds the post-commit notification call.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	authority services.TransitionAuthority,
	notifier ports.OrderNotifier,
	notifyTimeout time.Duration,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:    uowFactory,
		authority:     authority,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		logger:        logger.With("component", "change_order_status"),
	}
}

// Handle processes a status change request and returns the status the order
// ended up in on success.
//
// Rejections from the transition authority propagate unchanged with no
// mutation. A notification failure after the commit is logged and never
// surfaced, the status change has already been made durable at that point.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	previous := aggregate.Status()
	decision, err := h.authority.Decide(previous, cmd.Requested(), cmd.Actor())
	if err != nil {
		return order.Unknown, err
	}

	if decision.RequiresRefundNote && cmd.Note() == "" {
		return order.Unknown, errs.NewValueIsRequiredError("refundNote")
	}

	occurred := time.Now()
	if err = aggregate.TransitionTo(decision.Next, cmd.Actor(), cmd.Note(), occurred); err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	go h.notify(ports.OrderStatusChangedEvent{
		OrderID:    aggregate.ID(),
		From:       previous,
		To:         decision.Next,
		ChangedBy:  cmd.Actor(),
		OccurredAt: occurred,
	})

	return decision.Next, nil
}

// notify publishes the committed change on a bounded, detached context.
// The call runs on its own goroutine so a slow broker never delays the
// requesting actor: failures are logged for operations and intentionally
// never reach the caller.
func (h *ChangeOrderStatusCommandHandler) notify(event ports.OrderStatusChangedEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), h.notifyTimeout)
	defer cancel()

	if err := h.notifier.NotifyStatusChanged(ctx, event); err != nil {
		h.logger.Error("status change notification failed",
			"orderId", event.OrderID.String(),
			"from", event.From.String(),
			"to", event.To.String(),
			"error", err,
		)
	}
}
