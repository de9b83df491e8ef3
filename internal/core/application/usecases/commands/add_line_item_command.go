package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrAddLineItemCommandIsNotConstructed = errors.New(
	"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
)

// AddLineItemCommand represents adding a service selection to a persisted
// order while it is still in the editable window for the acting role.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	selection ServiceSelection
	actor     order.Role

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand creates a command to add a line item to an order.
func NewAddLineItemCommand(
	orderID kernel.UUID,
	selection ServiceSelection,
	actor order.Role,
) (AddLineItemCommand, error) {
	command := AddLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setSelection(selection),
		command.setActor(actor),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c AddLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Selection returns the requested service selection.
func (c AddLineItemCommand) Selection() ServiceSelection {
	return c.selection
}

// Actor returns the role performing the edit.
func (c AddLineItemCommand) Actor() order.Role {
	return c.actor
}

func (c *AddLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddLineItemCommand) setSelection(selection ServiceSelection) error {
	if err := selection.Validate(); err != nil {
		return err
	}

	c.selection = selection
	return nil
}

func (c *AddLineItemCommand) setActor(actor order.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
