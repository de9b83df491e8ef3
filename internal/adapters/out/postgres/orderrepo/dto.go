// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column backs the optimistic concurrency check, so two racing
// status changes on the same order never interleave.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber     string    `gorm:"index"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress   string
	DeliveryAddress string
	PickupFrom      time.Time
	PickupTo        time.Time
	DeliveryFrom    time.Time
	DeliveryTo      time.Time
	Method          int
	Express         bool
	Status          int `gorm:"index"`
	RefundNote      *string
	Version         int

	Items   []OrderItemDTO    `gorm:"foreignKey:OrderID;references:ID"`
	History []StatusChangeDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item row. Position preserves the
// insertion order of items within the order.
type OrderItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	ServiceID      uuid.UUID `gorm:"type:uuid"`
	Name           string
	UnitPriceCents int64
	Quantity       int
	Position       int

	Modifiers []ItemModifierDTO `gorm:"foreignKey:OrderItemID;references:ID"`
}

// TableName specifies the database table name for line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// ItemModifierDTO represents one flat-surcharge modifier snapshot on a line
// item. The code is unique per item.
type ItemModifierDTO struct {
	OrderItemID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code           string    `gorm:"primaryKey"`
	Name           string
	SurchargeCents int64
}

// TableName specifies the database table name for item modifiers.
func (ItemModifierDTO) TableName() string {
	return "order_item_modifiers"
}

// StatusChangeDTO represents one entry of the append-only status history.
// (OrderID, Seq) is the primary key, which makes replayed appends of the
// same entry idempotent.
type StatusChangeDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey"`
	FromStatus int
	ToStatus   int
	ChangedBy  int
	OccurredAt time.Time
	Note       string
}

// TableName specifies the database table name for status history entries.
func (StatusChangeDTO) TableName() string {
	return "order_status_changes"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		modifiers := make([]ItemModifierDTO, 0, len(item.Modifiers()))
		for _, modifier := range item.Modifiers() {
			modifiers = append(modifiers, ItemModifierDTO{
				OrderItemID:    item.ID().Bytes(),
				Code:           modifier.Code(),
				Name:           modifier.Name(),
				SurchargeCents: modifier.Surcharge().Cents(),
			})
		}

		items = append(items, OrderItemDTO{
			ID:             item.ID().Bytes(),
			OrderID:        aggregate.ID().Bytes(),
			ServiceID:      item.ServiceID().Bytes(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
			Position:       position,
			Modifiers:      modifiers,
		})
	}

	history := make([]StatusChangeDTO, 0, len(aggregate.History()))
	for seq, change := range aggregate.History() {
		history = append(history, StatusChangeDTO{
			OrderID:    aggregate.ID().Bytes(),
			Seq:        seq,
			FromStatus: int(change.From()),
			ToStatus:   int(change.To()),
			ChangedBy:  int(change.ChangedBy()),
			OccurredAt: change.Occurred(),
			Note:       change.Note(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		PickupFrom:      aggregate.PickupWindow().From(),
		PickupTo:        aggregate.PickupWindow().To(),
		DeliveryFrom:    aggregate.DeliveryWindow().From(),
		DeliveryTo:      aggregate.DeliveryWindow().To(),
		Method:          int(aggregate.Terms().Method()),
		Express:         aggregate.Terms().IsExpress(),
		Status:          int(aggregate.Status()),
		RefundNote:      aggregate.RefundNote(),
		Version:         aggregate.Version(),
		Items:           items,
		History:         history,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, *item)
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, changeDTO := range dto.History {
		change, changeErr := order.NewStatusChange(
			order.Status(changeDTO.FromStatus),
			order.Status(changeDTO.ToStatus),
			order.Role(changeDTO.ChangedBy),
			changeDTO.OccurredAt,
			changeDTO.Note,
		)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, change)
	}

	pickupWindow, err := kernel.NewTimeWindow(dto.PickupFrom, dto.PickupTo)
	if err != nil {
		return nil, err
	}
	deliveryWindow, err := kernel.NewTimeWindow(dto.DeliveryFrom, dto.DeliveryTo)
	if err != nil {
		return nil, err
	}
	terms, err := order.NewDeliveryTerms(order.HandoffMethod(dto.Method), dto.Express)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customerID,
		items,
		dto.PickupAddress,
		dto.DeliveryAddress,
		pickupWindow,
		deliveryWindow,
		terms,
		order.Status(dto.Status),
		history,
		dto.RefundNote,
		dto.Version,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return nil, err
	}

	modifiers := make([]order.Modifier, 0, len(dto.Modifiers))
	for _, modifierDTO := range dto.Modifiers {
		surcharge, surchargeErr := kernel.NewMoney(modifierDTO.SurchargeCents)
		if surchargeErr != nil {
			return nil, surchargeErr
		}
		modifier, modifierErr := order.NewModifier(modifierDTO.Code, modifierDTO.Name, surcharge)
		if modifierErr != nil {
			return nil, modifierErr
		}
		modifiers = append(modifiers, modifier)
	}

	return order.NewLineItem(id, serviceID, dto.Name, unitPrice, dto.Quantity, modifiers)
}
