// Package order provides domain entities and business logic for laundry order
// management. It implements the Order aggregate root with line-item
// composition, pricing, and lifecycle state transitions.
//
// The package includes:
//   - Order: The aggregate root owning line items and the status history
//   - Status: A state machine enforcing valid workflow transitions
//   - Basket: A pre-submission composer for line items
//   - LineItem and Modifier: Priced service selections with flat surcharges
//   - ComputeTotal: The pure pricing function shared by Basket and Order
//
// Key business rules:
//   - Orders must have at least one line item unless cancelled
//   - Status follows the workflow Pending -> Confirmed -> InProgress ->
//     ReadyForHandoff -> Completed, with explicit cancellation edges
//   - Cancelling out of ReadyForHandoff records a mandatory refund note
//   - The order total is always recomputed from line items and terms
//   - Line items are editable only in the per-role editable status window
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
