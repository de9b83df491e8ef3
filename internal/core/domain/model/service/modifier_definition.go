package service

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrModifierDefinitionIsNotConstructed is returned when a ModifierDefinition
// was not created through NewModifierDefinition.
var ErrModifierDefinitionIsNotConstructed = errors.New(
	"ModifierDefinition must be created via NewModifierDefinition constructor",
)

// ModifierDefinition describes an optional treatment that can be attached to a
// line item for a flat surcharge, e.g. express handling or stain treatment.
// Definitions belong to the catalog; orders snapshot them into line-item
// modifiers so later price changes never affect placed orders.
//
// ModifierDefinition is an immutable value object.
type ModifierDefinition struct {
	code      string
	name      string
	surcharge kernel.Money

	isConstructed bool
}

// NewModifierDefinition creates a validated modifier definition.
// The code is the stable machine identifier (e.g. "express"), the name is the
// customer-facing label, and the surcharge is the flat amount added once per
// selection.
func NewModifierDefinition(code, name string, surcharge kernel.Money) (ModifierDefinition, error) {
	if code == "" {
		return ModifierDefinition{}, errs.NewValueIsRequiredError("code")
	}
	if name == "" {
		return ModifierDefinition{}, errs.NewValueIsRequiredError("name")
	}

	return ModifierDefinition{
		code:          code,
		name:          name,
		surcharge:     surcharge,
		isConstructed: true,
	}, nil
}

// Code returns the stable machine identifier of the modifier.
func (m ModifierDefinition) Code() string {
	return m.code
}

// Name returns the customer-facing label of the modifier.
func (m ModifierDefinition) Name() string {
	return m.name
}

// Surcharge returns the flat amount added once per selection.
func (m ModifierDefinition) Surcharge() kernel.Money {
	return m.surcharge
}

// Validate ensures the definition was created through the constructor.
func (m ModifierDefinition) Validate() error {
	if !m.isConstructed {
		return ErrModifierDefinitionIsNotConstructed
	}
	return nil
}
