package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
)

// SubmitOrderCommandHandler handles the business logic for order submission.
// Resolves the catalog, snapshots prices into line items, and persists the
// new aggregate in Pending status.
type SubmitOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
// Requires a UoWFactory that exposes both the catalog and order repositories.
func NewSubmitOrderCommandHandler(uowFactory UoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission command.
//
// Every selection is resolved against the catalog inside one transaction so
// prices and availability are read consistently. Items are composed through
// a basket before the aggregate is created, mirroring the client-side
// composition flow.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	terms, err := order.NewDeliveryTerms(cmd.Method(), cmd.IsExpress())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	serviceRepo := uow.ServiceRepository()
	basket, err := order.NewBasket(terms)
	if err != nil {
		return err
	}

	for _, selection := range cmd.Selections() {
		definition, err := serviceRepo.Get(ctx, selection.ServiceID())
		if err != nil {
			return err
		}

		item, err := resolveLineItem(definition, selection)
		if err != nil {
			return err
		}
		if err = basket.Add(*item); err != nil {
			return err
		}
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		basket.Items(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.PickupWindow(),
		cmd.DeliveryWindow(),
		terms,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
