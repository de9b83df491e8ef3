package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items, status history,
// and recomputed totals.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse is the full read model of one order. Subtotals and
// the total are recomputed from the stored items, never read from a cached
// column.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	CustomerID      kernel.UUID
	Status          order.Status
	PickupAddress   string
	DeliveryAddress string
	Method          order.HandoffMethod
	Express         bool
	Items           []OrderItemResponse
	History         []StatusChangeResponse
	RefundNote      *string
	TotalCents      int64
	Version         int
}

// OrderItemResponse is one line item in the read model.
type OrderItemResponse struct {
	ID             kernel.UUID
	ServiceID      kernel.UUID
	Name           string
	UnitPriceCents int64
	Quantity       int
	Modifiers      []ItemModifierResponse
	SubtotalCents  int64
}

// ItemModifierResponse is one modifier surcharge on a line item.
type ItemModifierResponse struct {
	Code           string
	Name           string
	SurchargeCents int64
}

// StatusChangeResponse is one entry of the status history.
type StatusChangeResponse struct {
	From       order.Status
	To         order.Status
	ChangedBy  order.Role
	OccurredAt time.Time
	Note       string
}
