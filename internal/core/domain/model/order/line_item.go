package order

import (
	"errors"
	"fmt"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through the NewLineItem factory method.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one service selection inside an order: a catalog service, a
// positive quantity, and an ordered set of flat-surcharge modifiers. The name
// and unit price are snapshots taken from the catalog when the selection was
// made.
//
// A LineItem belongs exclusively to one order (or to the basket that will
// become one). Its subtotal is always derived, never stored:
//
//	subtotal = unit price x quantity + sum of modifier surcharges
//
// LineItem follows these invariants:
//   - Quantity is always >= 1
//   - Modifier codes are unique within the item
//   - Can only be created through NewLineItem
type LineItem struct {
	id        kernel.UUID
	serviceID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int
	modifiers []Modifier

	isConstructed bool
}

// NewLineItem creates a new LineItem instance with validation.
//
// Parameters:
//   - id: unique identifier of the line item
//   - serviceID: catalog identifier of the selected service
//   - name: service name snapshot
//   - unitPrice: per-unit price snapshot
//   - quantity: number of units (must be >= 1)
//   - modifiers: selected flat-surcharge modifiers (codes must be unique)
func NewLineItem(
	id kernel.UUID,
	serviceID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	modifiers []Modifier,
) (*LineItem, error) {
	item := &LineItem{
		unitPrice:     unitPrice,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setServiceID(serviceID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setModifiers(modifiers),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the LineItem was properly constructed through NewLineItem.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two line items by their unique identifiers.
func (li *LineItem) IsEqual(other *LineItem) bool {
	return other != nil && li.id.IsEqual(other.id)
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// ServiceID returns the catalog identifier of the selected service.
func (li *LineItem) ServiceID() kernel.UUID {
	return li.serviceID
}

// Name returns the service name snapshot.
func (li *LineItem) Name() string {
	return li.name
}

// UnitPrice returns the per-unit price snapshot.
func (li *LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Quantity returns the number of units.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// Modifiers returns the selected modifiers in selection order.
// The returned slice is a copy; mutating it does not affect the item.
func (li *LineItem) Modifiers() []Modifier {
	out := make([]Modifier, len(li.modifiers))
	copy(out, li.modifiers)
	return out
}

// Subtotal recomputes the derived price of this selection.
// Modifier surcharges are flat per selection, not multiplied by quantity.
func (li *LineItem) Subtotal() (kernel.Money, error) {
	if err := li.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total, err := li.unitPrice.MultiplyBy(li.quantity)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, m := range li.modifiers {
		total = total.Add(m.Surcharge())
	}

	return total, nil
}

// ChangeQuantity sets a new quantity.
// The quantity must stay >= 1; removing an item entirely is a separate
// operation with its own rules.
func (li *LineItem) ChangeQuantity(quantity int) error {
	if err := li.Validate(); err != nil {
		return err
	}
	return li.setQuantity(quantity)
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	li.serviceID = serviceID
	return nil
}

func (li *LineItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setModifiers(modifiers []Modifier) error {
	seen := make(map[string]struct{}, len(modifiers))
	for _, m := range modifiers {
		if err := m.Validate(); err != nil {
			return err
		}
		if _, ok := seen[m.Code()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"modifiers",
				fmt.Errorf("modifier code %q is duplicated", m.Code()),
			)
		}
		seen[m.Code()] = struct{}{}
	}

	li.modifiers = make([]Modifier, len(modifiers))
	copy(li.modifiers, modifiers)
	return nil
}
