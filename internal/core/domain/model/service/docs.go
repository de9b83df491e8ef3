// Package service models the laundry service catalog: the fixed service
// categories, purchasable service definitions with their base prices, and the
// flat-surcharge modifiers that may be attached to a selection.
//
// The catalog is configuration-owned and read-only from the order engine's
// perspective. Orders never reference catalog prices at read time; they
// snapshot name, unit price, and modifier surcharges into line items when the
// selection is made, so later catalog edits cannot change placed orders.
package service
