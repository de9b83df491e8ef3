package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
)

// AddLineItemCommandHandler adds a priced line item to a persisted order
// and returns the recomputed total.
type AddLineItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddLineItemCommandHandler creates a handler for line item additions.
func NewAddLineItemCommandHandler(uowFactory UoWFactory) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit. The aggregate enforces the editable window and
// returns an OrderLockedError outside of it; the handler performs no
// mutation in that case.
func (h *AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) (kernel.Money, error) {
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

	definition, err := uow.ServiceRepository().Get(ctx, cmd.Selection().ServiceID())
	if err != nil {
		return kernel.Money{}, err
	}

	item, err := resolveLineItem(definition, cmd.Selection())
	if err != nil {
		return kernel.Money{}, err
	}

	if err = aggregate.AddLineItem(*item, cmd.Actor()); err != nil {
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
