package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrRemoveLineItemCommandIsNotConstructed = errors.New(
	"RemoveLineItemCommand must be created via NewRemoveLineItemCommand constructor",
)

// RemoveLineItemCommand represents removing a line item from a persisted
// order. Items are addressed by their stable identifier, never by position.
type RemoveLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	actor   order.Role

	guard guard.ConstructorGuard
}

// NewRemoveLineItemCommand creates a command to remove a line item.
func NewRemoveLineItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	actor order.Role,
) (RemoveLineItemCommand, error) {
	command := RemoveLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemID(itemID),
		command.setActor(actor),
	); err != nil {
		return RemoveLineItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c RemoveLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the line item to remove.
func (c RemoveLineItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Actor returns the role performing the edit.
func (c RemoveLineItemCommand) Actor() order.Role {
	return c.actor
}

func (c *RemoveLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveLineItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *RemoveLineItemCommand) setActor(actor order.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
