// Package http adapts the REST API to the application's commands and queries.
package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Rejection reason strings surfaced in error responses.
const (
	reasonValidation    = "ValidationError"
	reasonInvalidEdge   = "InvalidEdge"
	reasonForbidden     = "Forbidden"
	reasonTerminalState = "TerminalState"
	reasonNotFound      = "NotFound"
	reasonConflict      = "Conflict"
	reasonOrderLocked   = "OrderLocked"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler       commands.SubmitOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	addLineItemHandler       commands.AddLineItemCommandHandler
	removeLineItemHandler    commands.RemoveLineItemCommandHandler
	changeQuantityHandler    commands.ChangeLineItemQuantityCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getActiveServicesHandler queries.GetActiveServicesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	addLineItemHandler commands.AddLineItemCommandHandler,
	removeLineItemHandler commands.RemoveLineItemCommandHandler,
	changeQuantityHandler commands.ChangeLineItemQuantityCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getActiveServicesHandler queries.GetActiveServicesQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:       submitOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		addLineItemHandler:       addLineItemHandler,
		removeLineItemHandler:    removeLineItemHandler,
		changeQuantityHandler:    changeQuantityHandler,
		getOrderHandler:          getOrderHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getActiveServicesHandler: getActiveServicesHandler,
	}
}

// SubmitOrder handles POST /api/v1/orders - submits a new order.
func (s *Server) SubmitOrder(ctx echo.Context, params servers.SubmitOrderParams) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(newOrder.CustomerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	selections, err := bindSelections(newOrder.Selections)
	if err != nil {
		return badRequest(ctx, "Invalid selection: "+err.Error())
	}

	pickupWindow, err := kernel.NewTimeWindow(newOrder.PickupWindow.From, newOrder.PickupWindow.To)
	if err != nil {
		return badRequest(ctx, "Invalid pickup window: "+err.Error())
	}
	deliveryWindow, err := kernel.NewTimeWindow(newOrder.DeliveryWindow.From, newOrder.DeliveryWindow.To)
	if err != nil {
		return badRequest(ctx, "Invalid delivery window: "+err.Error())
	}

	method, err := order.HandoffMethodFromString(string(newOrder.Method))
	if err != nil {
		return badRequest(ctx, "Invalid handoff method")
	}

	deliveryAddress := ""
	if newOrder.DeliveryAddress != nil {
		deliveryAddress = *newOrder.DeliveryAddress
	}
	express := newOrder.Express != nil && *newOrder.Express

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(
		orderID,
		customerID,
		selections,
		newOrder.PickupAddress,
		deliveryAddress,
		pickupWindow,
		deliveryWindow,
		method,
		express,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderAccepted{Id: orderID.Bytes()})
}

// GetActiveOrders handles GET /api/v1/orders/active - lists the open work queue.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = servers.OrderSummary{
			Id:          o.ID.Bytes(),
			OrderNumber: o.OrderNumber,
			Status:      o.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, orderID uuid.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status - requests a transition.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID uuid.UUID, params servers.ChangeOrderStatusParams) error {
	var request servers.StatusChangeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	requested, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+request.Status)
	}

	actor, err := actorRole(params.XActorRole)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	note := ""
	if request.Note != nil {
		note = *request.Note
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, requested, actor, note)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	newStatus, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StatusChanged{
		Id:     orderID,
		Status: newStatus.String(),
	})
}

// AddLineItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddLineItem(ctx echo.Context, orderID uuid.UUID, params servers.AddLineItemParams) error {
	var body servers.ServiceSelection
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	actor, err := actorRole(params.XActorRole)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	selection, err := bindSelection(body)
	if err != nil {
		return badRequest(ctx, "Invalid selection: "+err.Error())
	}

	cmd, err := commands.NewAddLineItemCommand(id, selection, actor)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	total, err := s.addLineItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderTotal{Id: orderID, TotalCents: total.Cents()})
}

// RemoveLineItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveLineItem(ctx echo.Context, orderID uuid.UUID, itemID uuid.UUID, params servers.RemoveLineItemParams) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	item, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	actor, err := actorRole(params.XActorRole)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRemoveLineItemCommand(id, item, actor)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	total, err := s.removeLineItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderTotal{Id: orderID, TotalCents: total.Cents()})
}

// ChangeLineItemQuantity handles PATCH /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) ChangeLineItemQuantity(ctx echo.Context, orderID uuid.UUID, itemID uuid.UUID, params servers.ChangeLineItemQuantityParams) error {
	var body servers.QuantityChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	item, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	actor, err := actorRole(params.XActorRole)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeLineItemQuantityCommand(id, item, body.Quantity, actor)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	total, err := s.changeQuantityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderTotal{Id: orderID, TotalCents: total.Cents()})
}

// GetServices handles GET /api/v1/services - lists the orderable catalog.
func (s *Server) GetServices(ctx echo.Context) error {
	query := queries.NewGetActiveServicesQuery()

	catalog, err := s.getActiveServicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve services")
	}

	response := make([]servers.Service, len(catalog))
	for i, entry := range catalog {
		modifiers := make([]servers.ServiceModifier, len(entry.Modifiers))
		for j, modifier := range entry.Modifiers {
			modifiers[j] = servers.ServiceModifier{
				Code:           modifier.Code,
				Name:           modifier.Name,
				SurchargeCents: modifier.SurchargeCents,
			}
		}

		response[i] = servers.Service{
			Id:              entry.ID.Bytes(),
			Name:            entry.Name,
			Kind:            entry.Kind.String(),
			BasePriceCents:  entry.BasePriceCents,
			ExpressEligible: entry.ExpressEligible,
			Modifiers:       &modifiers,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// actorRole resolves the X-Actor-Role header, defaulting to Customer.
func actorRole(header *servers.ActorRole) (order.Role, error) {
	if header == nil {
		return order.Customer, nil
	}
	return order.RoleFromString(string(*header))
}

func bindSelection(body servers.ServiceSelection) (commands.ServiceSelection, error) {
	serviceID, err := kernel.UUIDFromBytes(body.ServiceId[:])
	if err != nil {
		return commands.ServiceSelection{}, err
	}

	var codes []string
	if body.ModifierCodes != nil {
		codes = *body.ModifierCodes
	}

	return commands.NewServiceSelection(serviceID, body.Quantity, codes)
}

func bindSelections(body []servers.ServiceSelection) ([]commands.ServiceSelection, error) {
	selections := make([]commands.ServiceSelection, 0, len(body))
	for _, entry := range body {
		selection, err := bindSelection(entry)
		if err != nil {
			return nil, err
		}
		selections = append(selections, selection)
	}
	return selections, nil
}

func toOrderResponse(result queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(result.Items))
	for i, item := range result.Items {
		modifiers := make([]servers.ItemModifier, len(item.Modifiers))
		for j, modifier := range item.Modifiers {
			modifiers[j] = servers.ItemModifier{
				Code:           modifier.Code,
				Name:           modifier.Name,
				SurchargeCents: modifier.SurchargeCents,
			}
		}

		items[i] = servers.OrderItem{
			Id:             item.ID.Bytes(),
			ServiceId:      item.ServiceID.Bytes(),
			Name:           item.Name,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
			Modifiers:      &modifiers,
			SubtotalCents:  item.SubtotalCents,
		}
	}

	history := make([]servers.StatusChange, len(result.History))
	for i, change := range result.History {
		note := change.Note
		history[i] = servers.StatusChange{
			From:       change.From.String(),
			To:         change.To.String(),
			ChangedBy:  change.ChangedBy.String(),
			OccurredAt: change.OccurredAt,
			Note:       &note,
		}
	}

	pickupAddress := result.PickupAddress
	deliveryAddress := result.DeliveryAddress

	return servers.Order{
		Id:              result.ID.Bytes(),
		OrderNumber:     result.OrderNumber,
		CustomerId:      result.CustomerID.Bytes(),
		Status:          result.Status.String(),
		PickupAddress:   &pickupAddress,
		DeliveryAddress: &deliveryAddress,
		Method:          result.Method.String(),
		Express:         result.Express,
		Items:           items,
		History:         history,
		RefundNote:      result.RefundNote,
		TotalCents:      result.TotalCents,
		Version:         result.Version,
	}
}

// writeDomainError maps application and domain errors onto HTTP responses.
// The reason field lets clients distinguish rejection categories without
// parsing messages.
func writeDomainError(ctx echo.Context, err error) error {
	var rejection *services.TransitionRejectedError
	if errors.As(err, &rejection) {
		status := http.StatusConflict
		reason := reasonInvalidEdge
		switch rejection.Reason {
		case services.Forbidden:
			status = http.StatusForbidden
			reason = reasonForbidden
		case services.TerminalState:
			reason = reasonTerminalState
		}
		return writeError(ctx, status, reason, rejection.Error())
	}

	switch {
	case errors.Is(err, order.ErrOrderIsLocked):
		return writeError(ctx, http.StatusConflict, reasonOrderLocked, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, reasonNotFound, err.Error())
	case errors.Is(err, errs.ErrVersionConflict):
		return writeError(ctx, http.StatusConflict, reasonConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, reasonValidation, err.Error())
	}

	return internalError(ctx, "Internal error")
}

func badRequest(ctx echo.Context, message string) error {
	return writeError(ctx, http.StatusBadRequest, reasonValidation, message)
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func writeError(ctx echo.Context, status int, reason string, message string) error {
	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
		Reason:  &reason,
	})
}
