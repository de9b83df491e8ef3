package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrSelectionsAreRequired   = errors.New("at least one service selection is required")
	ErrPickupAddressIsRequired = errors.New("pickup address is required")
)

// SubmitOrderCommand represents a customer submitting a composed order:
// the service selections plus scheduling and delivery terms. The handler
// resolves catalog prices server-side, so the command carries no amounts.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	selections      []ServiceSelection
	pickupAddress   string
	deliveryAddress string
	pickupWindow    kernel.TimeWindow
	deliveryWindow  kernel.TimeWindow
	method          order.HandoffMethod
	express         bool

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new laundry order.
// Validates identifiers, the selection list, the pickup address, and both
// time windows. Address and window consistency rules beyond that are
// enforced by the order aggregate.
func NewSubmitOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	selections []ServiceSelection,
	pickupAddress string,
	deliveryAddress string,
	pickupWindow kernel.TimeWindow,
	deliveryWindow kernel.TimeWindow,
	method order.HandoffMethod,
	express bool,
) (SubmitOrderCommand, error) {
	command := SubmitOrderCommand{
		deliveryAddress: strings.TrimSpace(deliveryAddress),
		express:         express,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setSelections(selections),
		command.setPickupAddress(pickupAddress),
		command.setWindows(pickupWindow, deliveryWindow),
		command.setMethod(method),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the client-generated identifier for the new order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the submitting customer's identifier.
func (c SubmitOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Selections returns the requested service selections.
func (c SubmitOrderCommand) Selections() []ServiceSelection {
	return append([]ServiceSelection(nil), c.selections...)
}

// PickupAddress returns where the laundry is collected from.
func (c SubmitOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the delivery destination, empty for shop pickup.
func (c SubmitOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PickupWindow returns the requested collection window.
func (c SubmitOrderCommand) PickupWindow() kernel.TimeWindow {
	return c.pickupWindow
}

// DeliveryWindow returns the requested handoff window.
func (c SubmitOrderCommand) DeliveryWindow() kernel.TimeWindow {
	return c.deliveryWindow
}

// Method returns the requested handoff method.
func (c SubmitOrderCommand) Method() order.HandoffMethod {
	return c.method
}

// IsExpress reports whether express turnaround was requested.
func (c SubmitOrderCommand) IsExpress() bool {
	return c.express
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitOrderCommand) setSelections(selections []ServiceSelection) error {
	if len(selections) == 0 {
		return ErrSelectionsAreRequired
	}
	for _, selection := range selections {
		if err := selection.Validate(); err != nil {
			return err
		}
	}

	c.selections = append([]ServiceSelection(nil), selections...)
	return nil
}

func (c *SubmitOrderCommand) setPickupAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrPickupAddressIsRequired
	}

	c.pickupAddress = address
	return nil
}

func (c *SubmitOrderCommand) setWindows(pickup, delivery kernel.TimeWindow) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	if err := delivery.Validate(); err != nil {
		return err
	}

	c.pickupWindow = pickup
	c.deliveryWindow = delivery
	return nil
}

func (c *SubmitOrderCommand) setMethod(method order.HandoffMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
