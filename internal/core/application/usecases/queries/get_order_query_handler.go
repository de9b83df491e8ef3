package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its items and history.
//
// Subtotals and the order total go through the domain pricing function over
// the stored rows, so the read model can never disagree with what a command
// would compute.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderRow struct {
	ID              uuid.UUID
	OrderNumber     string
	CustomerID      uuid.UUID
	PickupAddress   string
	DeliveryAddress string
	Method          int
	Express         bool
	Status          int
	RefundNote      *string
	Version         int
}

type itemRow struct {
	ID             uuid.UUID
	ServiceID      uuid.UUID
	Name           string
	UnitPriceCents int64
	Quantity       int
}

type modifierRow struct {
	OrderItemID    uuid.UUID
	Code           string
	Name           string
	SurchargeCents int64
}

type historyRow struct {
	FromStatus int
	ToStatus   int
	ChangedBy  int
	OccurredAt time.Time
	Note       string
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var head orderRow
	err := db.Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			pickup_address,
			delivery_address,
			method,
			express,
			status,
			refund_note,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(
		&head.ID, &head.OrderNumber, &head.CustomerID,
		&head.PickupAddress, &head.DeliveryAddress,
		&head.Method, &head.Express, &head.Status,
		&head.RefundNote, &head.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	items, domainItems, err := h.loadItems(db, head.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	history, err := h.loadHistory(db, head.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	terms, err := order.NewDeliveryTerms(order.HandoffMethod(head.Method), head.Express)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	total, err := order.ComputeTotal(domainItems, terms)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(head.ID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	customerID, err := kernel.UUIDFromBytes(head.CustomerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:              orderID,
		OrderNumber:     head.OrderNumber,
		CustomerID:      customerID,
		Status:          order.Status(head.Status),
		PickupAddress:   head.PickupAddress,
		DeliveryAddress: head.DeliveryAddress,
		Method:          order.HandoffMethod(head.Method),
		Express:         head.Express,
		Items:           items,
		History:         history,
		RefundNote:      head.RefundNote,
		TotalCents:      total.Cents(),
		Version:         head.Version,
	}, nil
}

func (h GetOrderQueryHandler) loadItems(
	db *gorm.DB,
	orderID uuid.UUID,
) ([]OrderItemResponse, []order.LineItem, error) {
	itemRows, err := db.Raw(`
		SELECT
			id,
			service_id,
			name,
			unit_price_cents,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer itemRows.Close()

	var rawItems []itemRow
	for itemRows.Next() {
		var row itemRow
		if err = itemRows.Scan(&row.ID, &row.ServiceID, &row.Name, &row.UnitPriceCents, &row.Quantity); err != nil {
			return nil, nil, err
		}
		rawItems = append(rawItems, row)
	}
	if err = itemRows.Err(); err != nil {
		return nil, nil, err
	}

	modifiersByItem, err := h.loadModifiers(db, orderID)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]OrderItemResponse, 0, len(rawItems))
	domainItems := make([]order.LineItem, 0, len(rawItems))
	for _, row := range rawItems {
		itemID, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		serviceID, idErr := kernel.UUIDFromBytes(row.ServiceID[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		unitPrice, priceErr := kernel.NewMoney(row.UnitPriceCents)
		if priceErr != nil {
			return nil, nil, priceErr
		}

		modifierResponses := modifiersByItem[row.ID]
		modifiers := make([]order.Modifier, 0, len(modifierResponses))
		for _, m := range modifierResponses {
			surcharge, surchargeErr := kernel.NewMoney(m.SurchargeCents)
			if surchargeErr != nil {
				return nil, nil, surchargeErr
			}
			modifier, modifierErr := order.NewModifier(m.Code, m.Name, surcharge)
			if modifierErr != nil {
				return nil, nil, modifierErr
			}
			modifiers = append(modifiers, modifier)
		}

		item, itemErr := order.NewLineItem(itemID, serviceID, row.Name, unitPrice, row.Quantity, modifiers)
		if itemErr != nil {
			return nil, nil, itemErr
		}

		subtotal, subtotalErr := item.Subtotal()
		if subtotalErr != nil {
			return nil, nil, subtotalErr
		}

		responses = append(responses, OrderItemResponse{
			ID:             itemID,
			ServiceID:      serviceID,
			Name:           row.Name,
			UnitPriceCents: row.UnitPriceCents,
			Quantity:       row.Quantity,
			Modifiers:      modifierResponses,
			SubtotalCents:  subtotal.Cents(),
		})
		domainItems = append(domainItems, *item)
	}

	return responses, domainItems, nil
}

func (h GetOrderQueryHandler) loadModifiers(
	db *gorm.DB,
	orderID uuid.UUID,
) (map[uuid.UUID][]ItemModifierResponse, error) {
	rows, err := db.Raw(`
		SELECT
			m.order_item_id,
			m.code,
			m.name,
			m.surcharge_cents
		FROM order_item_modifiers m
		JOIN order_items i ON i.id = m.order_item_id
		WHERE i.order_id = ?
		ORDER BY m.code
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]ItemModifierResponse)
	for rows.Next() {
		var row modifierRow
		if err = rows.Scan(&row.OrderItemID, &row.Code, &row.Name, &row.SurchargeCents); err != nil {
			return nil, err
		}
		result[row.OrderItemID] = append(result[row.OrderItemID], ItemModifierResponse{
			Code:           row.Code,
			Name:           row.Name,
			SurchargeCents: row.SurchargeCents,
		})
	}

	return result, rows.Err()
}

func (h GetOrderQueryHandler) loadHistory(db *gorm.DB, orderID uuid.UUID) ([]StatusChangeResponse, error) {
	rows, err := db.Raw(`
		SELECT
			from_status,
			to_status,
			changed_by,
			occurred_at,
			note
		FROM order_status_changes
		WHERE order_id = ?
		ORDER BY seq
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]StatusChangeResponse, 0)
	for rows.Next() {
		var row historyRow
		if err = rows.Scan(&row.FromStatus, &row.ToStatus, &row.ChangedBy, &row.OccurredAt, &row.Note); err != nil {
			return nil, err
		}
		history = append(history, StatusChangeResponse{
			From:       order.Status(row.FromStatus),
			To:         order.Status(row.ToStatus),
			ChangedBy:  order.Role(row.ChangedBy),
			OccurredAt: row.OccurredAt,
			Note:       row.Note,
		})
	}

	return history, rows.Err()
}
