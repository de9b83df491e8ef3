package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
)

// ChangeLineItemQuantityCommandHandler updates a line item quantity on a
// persisted order and returns the recomputed total.
type ChangeLineItemQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeLineItemQuantityCommandHandler creates a handler for quantity updates.
func NewChangeLineItemQuantityCommandHandler(uowFactory OrderUoWFactory) ChangeLineItemQuantityCommandHandler {
	return ChangeLineItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change.
func (h *ChangeLineItemQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeLineItemQuantityCommand,
) (kernel.Money, error) {
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

	if err = aggregate.ChangeLineItemQuantity(cmd.ItemID(), cmd.Quantity(), cmd.Actor()); err != nil {
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
