package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// status on behalf of an authenticated actor. The note is free-form and
// becomes mandatory when the transition requires a refund annotation.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	requested order.Status
	actor     order.Role
	note      string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to request a status change.
// Validates the order id, the requested status, and the acting role.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	requested order.Status,
	actor order.Role,
	note string,
) (ChangeOrderStatusCommand, error) {
	command := ChangeOrderStatusCommand{
		note:  strings.TrimSpace(note),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRequested(requested),
		command.setActor(actor),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requested returns the status the actor wants the order moved to.
func (c ChangeOrderStatusCommand) Requested() order.Status {
	return c.requested
}

// Actor returns the role performing the request.
func (c ChangeOrderStatusCommand) Actor() order.Role {
	return c.actor
}

// Note returns the free-form annotation for the transition.
func (c ChangeOrderStatusCommand) Note() string {
	return c.note
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setRequested(requested order.Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}

	c.requested = requested
	return nil
}

func (c *ChangeOrderStatusCommand) setActor(actor order.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
