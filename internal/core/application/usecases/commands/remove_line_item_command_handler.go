package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
)

// RemoveLineItemCommandHandler removes a line item from a persisted order
// and returns the recomputed total. Removing the last remaining item is
// rejected by the aggregate.
type RemoveLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveLineItemCommandHandler creates a handler for line item removals.
func NewRemoveLineItemCommandHandler(uowFactory OrderUoWFactory) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal.
func (h *RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) (kernel.Money, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Money{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Money{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.Money{}, err
	}

	if err = aggregate.RemoveLineItem(cmd.ItemID(), cmd.Actor()); err != nil {
		return kernel.Money{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return kernel.Money{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Money{}, err
	}

	return aggregate.Total()
}
