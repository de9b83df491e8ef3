package commands

import (
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/errs"
)

// expressModifierCode marks the per-item express handling surcharge, which
// only express-eligible services offer.
const expressModifierCode = "express"

// resolveLineItem turns a service selection into a priced line item by
// snapshotting the catalog definition. Inactive services are rejected, and
// the express modifier is rejected on services that are not express
// eligible.
func resolveLineItem(definition *service.ServiceDefinition, selection ServiceSelection) (*order.LineItem, error) {
	if !definition.IsActive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"serviceId is invalid",
			fmt.Errorf("service %s is not available for ordering", definition.Name()),
		)
	}

	modifiers := make([]order.Modifier, 0, len(selection.ModifierCodes()))
	for _, code := range selection.ModifierCodes() {
		definitionModifier, err := definition.ModifierByCode(code)
		if err != nil {
			return nil, err
		}
		if code == expressModifierCode && !definition.IsExpressEligible() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"modifierCode is invalid",
				fmt.Errorf("service %s is not eligible for express handling", definition.Name()),
			)
		}

		modifier, err := order.NewModifier(
			definitionModifier.Code(),
			definitionModifier.Name(),
			definitionModifier.Surcharge(),
		)
		if err != nil {
			return nil, err
		}
		modifiers = append(modifiers, modifier)
	}

	return order.NewLineItem(
		kernel.NewUUID(),
		definition.ID(),
		definition.Name(),
		definition.BasePrice(),
		selection.Quantity(),
		modifiers,
	)
}
