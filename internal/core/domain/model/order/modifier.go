package order

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// Modifier is the order-side snapshot of a catalog modifier attached to a
// line item: a named flat surcharge such as express handling or stain
// treatment. The surcharge amount is captured at selection time so later
// catalog changes never alter a placed order.
//
// Modifier is an immutable value object.
type Modifier struct {
	code      string
	name      string
	surcharge kernel.Money

	isConstructed bool
}

// ErrModifierIsNotConstructed is returned when a Modifier was not created
// through NewModifier.
var ErrModifierIsNotConstructed = errs.NewValueIsRequiredError(
	"Modifier must be created via NewModifier",
)

// NewModifier creates a validated line-item modifier snapshot.
func NewModifier(code, name string, surcharge kernel.Money) (Modifier, error) {
	if code == "" {
		return Modifier{}, errs.NewValueIsRequiredError("code")
	}
	if name == "" {
		return Modifier{}, errs.NewValueIsRequiredError("name")
	}

	return Modifier{
		code:          code,
		name:          name,
		surcharge:     surcharge,
		isConstructed: true,
	}, nil
}

// Code returns the stable machine identifier of the modifier.
func (m Modifier) Code() string {
	return m.code
}

// Name returns the customer-facing label captured at selection time.
func (m Modifier) Name() string {
	return m.name
}

// Surcharge returns the flat amount captured at selection time.
func (m Modifier) Surcharge() kernel.Money {
	return m.surcharge
}

// Validate ensures the modifier was created through the constructor.
func (m Modifier) Validate() error {
	if !m.isConstructed {
		return ErrModifierIsNotConstructed
	}
	return nil
}
