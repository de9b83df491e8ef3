package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderStatusChangedEvent describes one committed status transition.
type OrderStatusChangedEvent struct {
	OrderID    kernel.UUID
	From       order.Status
	To         order.Status
	ChangedBy  order.Role
	OccurredAt time.Time
}

// OrderNotifier publishes status change events to interested parties.
//
// Delivery is fire-and-forget with at-most-once-per-call semantics: the
// caller invokes it after the transition has been committed, bounds it with
// a timeout context, and only logs a failure. A failed notification never
// affects the order state it describes.
type OrderNotifier interface {
	NotifyStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
