package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrChangeLineItemQuantityCommandIsNotConstructed = errors.New(
	"ChangeLineItemQuantityCommand must be created via NewChangeLineItemQuantityCommand constructor",
)

// ChangeLineItemQuantityCommand represents updating the quantity of one
// line item on a persisted order.
type ChangeLineItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity int
	actor    order.Role

	guard guard.ConstructorGuard
}

// NewChangeLineItemQuantityCommand creates a command to change a line item quantity.
func NewChangeLineItemQuantityCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	quantity int,
	actor order.Role,
) (ChangeLineItemQuantityCommand, error) {
	command := ChangeLineItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemID(itemID),
		command.setQuantity(quantity),
		command.setActor(actor),
	); err != nil {
		return ChangeLineItemQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeLineItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeLineItemQuantityCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c ChangeLineItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the line item to update.
func (c ChangeLineItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the new quantity.
func (c ChangeLineItemQuantityCommand) Quantity() int {
	return c.quantity
}

// Actor returns the role performing the edit.
func (c ChangeLineItemQuantityCommand) Actor() order.Role {
	return c.actor
}

func (c *ChangeLineItemQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeLineItemQuantityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ChangeLineItemQuantityCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *ChangeLineItemQuantityCommand) setActor(actor order.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
