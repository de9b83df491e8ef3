package order

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsLocked is returned when line items are edited outside the
	// editable status window for the acting role.
	ErrOrderIsLocked = errors.New("order is locked")
)

// OrderLockedError reports a line-item edit attempted while the order's
// status does not permit editing for the acting role.
type OrderLockedError struct {
	Status Status
	Role   Role
}

// Error implements the error interface.
func (e *OrderLockedError) Error() string {
	return fmt.Sprintf("%s: %s cannot edit line items while order is %s",
		ErrOrderIsLocked, e.Role, e.Status)
}

// Unwrap supports errors.Is checks against ErrOrderIsLocked.
func (e *OrderLockedError) Unwrap() error {
	return ErrOrderIsLocked
}

// NewOrderLockedError creates an OrderLockedError for the given status and role.
func NewOrderLockedError(status Status, role Role) *OrderLockedError {
	return &OrderLockedError{Status: status, Role: role}
}

// Order is the aggregate root for a laundry order. It exclusively owns its
// line items and status history; nothing else mutates them directly.
//
// Order maintains these invariants:
//   - At least one line item while the order is not cancelled
//   - The total is always recomputed from the current items and terms
//   - Status moves only along the workflow graph, recorded in an
//     append-only history whose last entry matches the current status
//   - Line items are editable only in the per-role editable window
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	orderNumber string
	customerID  kernel.UUID

	items []LineItem

	pickupAddress   string
	deliveryAddress string
	pickupWindow    kernel.TimeWindow
	deliveryWindow  kernel.TimeWindow
	terms           DeliveryTerms

	status     Status
	history    []StatusChange
	refundNote *string

	// version backs the optimistic concurrency check in persistence.
	version int

	isConstructed bool
}

// NewOrder creates a submitted order in Pending status.
//
// The order requires at least one line item, a pickup address, and a pickup
// window that ends before the handoff window begins. A delivery address is
// required only when the terms use the Delivery handoff method.
//
// The order number is derived from the submission date and the order id,
// in the form yymmdd-NNNNN.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	pickupAddress string,
	deliveryAddress string,
	pickupWindow kernel.TimeWindow,
	deliveryWindow kernel.TimeWindow,
	terms DeliveryTerms,
	submittedAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setPickupAddress(pickupAddress),
		order.setTerms(terms),
		order.setDeliveryAddress(deliveryAddress, terms),
		order.setWindows(pickupWindow, deliveryWindow),
	); err != nil {
		return nil, err
	}

	if submittedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("submittedAt")
	}
	order.orderNumber = buildOrderNumber(id, submittedAt)

	created, err := NewStatusChange(Unknown, Pending, Customer, submittedAt, "")
	if err != nil {
		return nil, err
	}
	order.history = []StatusChange{created}

	return order, nil
}

// RestoreOrder rehydrates an order from persistence. The submission rules
// are not re-run, but the structural invariants are revalidated: the status
// must be a known one and agree with the last history entry, and an order
// that is not cancelled must keep at least one line item.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	items []LineItem,
	pickupAddress string,
	deliveryAddress string,
	pickupWindow kernel.TimeWindow,
	deliveryWindow kernel.TimeWindow,
	terms DeliveryTerms,
	status Status,
	history []StatusChange,
	refundNote *string,
	version int,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("history")
	}
	if last := history[len(history)-1].To(); last != status {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"history is invalid",
			fmt.Errorf("status %s does not match last history entry %s", status, last),
		)
	}
	if len(items) == 0 && status != Cancelled {
		return nil, errs.NewValueIsRequiredError("items")
	}

	return &Order{
		id:              id,
		orderNumber:     orderNumber,
		customerID:      customerID,
		items:           items,
		pickupAddress:   pickupAddress,
		deliveryAddress: deliveryAddress,
		pickupWindow:    pickupWindow,
		deliveryWindow:  deliveryWindow,
		terms:           terms,
		status:          status,
		history:         history,
		refundNote:      refundNote,
		version:         version,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the line items in insertion order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// PickupAddress returns where the laundry is collected from.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// DeliveryAddress returns where the order is delivered to.
// Empty when the handoff method is Pickup.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PickupWindow returns the scheduled collection window.
func (o *Order) PickupWindow() kernel.TimeWindow {
	return o.pickupWindow
}

// DeliveryWindow returns the scheduled handoff window.
func (o *Order) DeliveryWindow() kernel.TimeWindow {
	return o.deliveryWindow
}

// Terms returns the delivery terms.
func (o *Order) Terms() DeliveryTerms {
	return o.terms
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// History returns the append-only status change log, oldest first.
func (o *Order) History() []StatusChange {
	history := make([]StatusChange, len(o.history))
	copy(history, o.history)
	return history
}

// RefundNote returns the refund annotation recorded when an admin cancelled
// the order out of ReadyForHandoff. Nil when no refund was recorded.
func (o *Order) RefundNote() *string {
	return o.refundNote
}

// Version returns the persisted optimistic concurrency version.
func (o *Order) Version() int {
	return o.version
}

// Total recomputes the order total from the current line items and terms.
// The total is never stored, so it cannot drift from its inputs.
func (o *Order) Total() (kernel.Money, error) {
	return ComputeTotal(o.items, o.terms)
}

// TransitionTo moves the order along the workflow graph and appends the
// change to the status history.
//
// The lifecycle edges themselves are enforced here. Whether the acting role
// is allowed to request the edge is decided by the transition service before
// calling this method. Cancelling out of ReadyForHandoff requires a note,
// which is recorded as the refund annotation.
func (o *Order) TransitionTo(next Status, actor Role, note string, occurred time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(next) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("cannot transition from %s to %s", o.status, next),
		)
	}

	note = strings.TrimSpace(note)
	refund := o.status == ReadyForHandoff && next == Cancelled
	if refund && note == "" {
		return errs.NewValueIsRequiredError("refundNote")
	}

	change, err := NewStatusChange(o.status, next, actor, occurred, note)
	if err != nil {
		return err
	}

	o.history = append(o.history, change)
	o.status = next
	if refund {
		o.refundNote = &note
	}
	return nil
}

// AnnotateRefund records or replaces the refund note on a cancelled order.
// The only mutation allowed in a terminal state, restricted to admins.
func (o *Order) AnnotateRefund(note string, actor Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor != Admin {
		return errs.NewValueIsInvalidErrorWithCause(
			"actor is invalid",
			fmt.Errorf("role %s may not annotate refunds", actor),
		)
	}
	if o.status != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("refund annotation requires a cancelled order, current status is %s", o.status),
		)
	}

	note = strings.TrimSpace(note)
	if note == "" {
		return errs.NewValueIsRequiredError("refundNote")
	}

	o.refundNote = &note
	return nil
}

// AddLineItem appends a line item while the order is editable for the role.
func (o *Order) AddLineItem(item LineItem, actor Role) error {
	if err := o.checkEditable(actor); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	for _, existing := range o.items {
		if existing.ID().IsEqual(item.ID()) {
			return errs.NewValueIsInvalidErrorWithCause(
				"line item is invalid",
				fmt.Errorf("item %s is already part of the order", item.ID()),
			)
		}
	}

	o.items = append(o.items, item)
	return nil
}

// RemoveLineItem deletes a line item by id. Removing the last remaining item
// is disallowed, an order must keep at least one item or be cancelled.
func (o *Order) RemoveLineItem(itemID kernel.UUID, actor Role) error {
	if err := o.checkEditable(actor); err != nil {
		return err
	}
	if len(o.items) == 1 && o.items[0].ID().IsEqual(itemID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"line item is invalid",
			errors.New("cannot remove the last line item from an order"),
		)
	}

	for i, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("lineItemId", itemID)
}

// ChangeLineItemQuantity updates the quantity of a line item by id.
func (o *Order) ChangeLineItemQuantity(itemID kernel.UUID, quantity int, actor Role) error {
	if err := o.checkEditable(actor); err != nil {
		return err
	}

	for i := range o.items {
		if o.items[i].ID().IsEqual(itemID) {
			return o.items[i].ChangeQuantity(quantity)
		}
	}
	return errs.NewObjectNotFoundError("lineItemId", itemID)
}

// checkEditable verifies that line items may be edited in the current status
// by the given role. Customers may edit only while Pending, staff and admins
// also while Confirmed.
func (o *Order) checkEditable(actor Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	switch o.status {
	case Pending:
		return nil
	case Confirmed:
		if actor == Staff || actor == Admin {
			return nil
		}
	}
	return NewOrderLockedError(o.status, actor)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	seen := make(map[kernel.UUID]bool, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if seen[item.ID()] {
			return errs.NewValueIsInvalidErrorWithCause(
				"line items are invalid",
				fmt.Errorf("item %s appears more than once", item.ID()),
			)
		}
		seen[item.ID()] = true
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPickupAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	o.pickupAddress = address
	return nil
}

func (o *Order) setDeliveryAddress(address string, terms DeliveryTerms) error {
	address = strings.TrimSpace(address)
	if terms.isConstructed && terms.Method() == Delivery && address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setWindows(pickup kernel.TimeWindow, delivery kernel.TimeWindow) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	if err := delivery.Validate(); err != nil {
		return err
	}
	if !pickup.EndsBefore(delivery) {
		return errs.NewValueIsInvalidErrorWithCause(
			"time windows are invalid",
			errors.New("pickup window must end before the delivery window starts"),
		)
	}
	o.pickupWindow = pickup
	o.deliveryWindow = delivery
	return nil
}

func (o *Order) setTerms(terms DeliveryTerms) error {
	if err := terms.Validate(); err != nil {
		return err
	}
	o.terms = terms
	return nil
}

// buildOrderNumber derives the yymmdd-NNNNN order number from the submission
// date and the order id, keeping the suffix stable for a given order.
func buildOrderNumber(id kernel.UUID, submittedAt time.Time) string {
	raw := id.Bytes()
	suffix := binary.BigEndian.Uint32(raw[:4]) % 100000
	return fmt.Sprintf("%s-%05d", submittedAt.Format("060102"), suffix)
}
