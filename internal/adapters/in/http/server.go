// Package http exposes the coordination API over echo. Handlers translate
// JSON requests into commands and queries and map domain failures onto HTTP
// status codes.
package http

import (
	"net/http"

	"eventsupply/internal/core/application/usecases/commands"
	"eventsupply/internal/core/application/usecases/queries"
	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/core/domain/model/evidence"
	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	approveOrderHandler       commands.ApproveOrderCommandHandler
	advancePreparationHandler commands.AdvancePreparationCommandHandler
	assignDeliveryHandler     commands.AssignDeliveryCommandHandler
	dispatchOrderHandler      commands.DispatchOrderCommandHandler
	confirmDeliveryHandler    commands.ConfirmDeliveryCommandHandler
	returnOrderHandler        commands.ReturnOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	attachPhotoHandler        commands.AttachPhotoCommandHandler
	issueCredentialHandler    commands.IssueCredentialCommandHandler
	resendCredentialHandler   commands.ResendCredentialCommandHandler
	verifyLoginHandler        commands.VerifyLoginCommandHandler

	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getInventoryHandler    queries.GetInventoryQueryHandler
}

// ServerHandlers bundles the use case handlers the server depends on.
type ServerHandlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	ApproveOrder       commands.ApproveOrderCommandHandler
	AdvancePreparation commands.AdvancePreparationCommandHandler
	AssignDelivery     commands.AssignDeliveryCommandHandler
	DispatchOrder      commands.DispatchOrderCommandHandler
	ConfirmDelivery    commands.ConfirmDeliveryCommandHandler
	ReturnOrder        commands.ReturnOrderCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	AttachPhoto        commands.AttachPhotoCommandHandler
	IssueCredential    commands.IssueCredentialCommandHandler
	ResendCredential   commands.ResendCredentialCommandHandler
	VerifyLogin        commands.VerifyLoginCommandHandler
	GetOrder           queries.GetOrderQueryHandler
	GetActiveOrders    queries.GetActiveOrdersQueryHandler
	GetInventory       queries.GetInventoryQueryHandler
}

// NewServer creates the HTTP server with the required use case handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createOrderHandler:        handlers.CreateOrder,
		approveOrderHandler:       handlers.ApproveOrder,
		advancePreparationHandler: handlers.AdvancePreparation,
		assignDeliveryHandler:     handlers.AssignDelivery,
		dispatchOrderHandler:      handlers.DispatchOrder,
		confirmDeliveryHandler:    handlers.ConfirmDelivery,
		returnOrderHandler:        handlers.ReturnOrder,
		cancelOrderHandler:        handlers.CancelOrder,
		attachPhotoHandler:        handlers.AttachPhoto,
		issueCredentialHandler:    handlers.IssueCredential,
		resendCredentialHandler:   handlers.ResendCredential,
		verifyLoginHandler:        handlers.VerifyLogin,
		getOrderHandler:           handlers.GetOrder,
		getActiveOrdersHandler:    handlers.GetActiveOrders,
		getInventoryHandler:       handlers.GetInventory,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/approve", s.ApproveOrder)
	api.POST("/orders/:id/status", s.AdvanceStatus)
	api.POST("/orders/:id/assign", s.AssignDelivery)
	api.POST("/orders/:id/dispatch", s.DispatchOrder)
	api.POST("/orders/:id/deliver", s.ConfirmDelivery)
	api.POST("/orders/:id/return", s.ReturnOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/photos", s.AttachPhoto)

	api.POST("/auth/request-code", s.RequestLoginCode)
	api.POST("/auth/verify", s.VerifyLogin)
	api.POST("/credentials/resend", s.ResendCredential)

	api.GET("/inventory", s.GetInventory)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req newOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerRef, err := kernel.UUIDFromString(req.CustomerRef)
	if err != nil {
		return badRequest(ctx, "Invalid customer_ref: "+err.Error())
	}

	phone, err := kernel.NewPhone(req.SupervisorPhone)
	if err != nil {
		return badRequest(ctx, "Invalid supervisor_phone: "+err.Error())
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productRef, refErr := kernel.UUIDFromString(item.ProductRef)
		if refErr != nil {
			return badRequest(ctx, "Invalid product_ref: "+refErr.Error())
		}
		items = append(items, commands.ItemInput{ProductRef: productRef, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customerRef,
		req.EventName,
		req.EventDate,
		phone,
		items,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderNumber, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderCreatedResponse{OrderNumber: orderNumber})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	items := make([]orderItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, orderItemResponse{
			ProductRef:         item.ProductRef.String(),
			QuantityRequested:  item.QuantityRequested,
			QuantityDispatched: item.QuantityDispatched,
			QuantityReturned:   item.QuantityReturned,
		})
	}

	return ctx.JSON(http.StatusOK, orderDetailResponse{
		ID:                 detail.ID.String(),
		OrderNumber:        detail.OrderNumber,
		CustomerRef:        detail.CustomerRef.String(),
		EventName:          detail.EventName,
		EventDate:          detail.EventDate,
		SupervisorPhone:    detail.SupervisorPhone,
		Status:             detail.Status,
		AssignedStaffRef:   optionalID(detail.AssignedStaffRef),
		AssignedVehicleRef: optionalID(detail.AssignedVehicleRef),
		RecipientName:      detail.RecipientName,
		DamagedNotes:       detail.DamagedNotes,
		MissingNotes:       detail.MissingNotes,
		CreatedAt:          detail.CreatedAt,
		ApprovedAt:         detail.ApprovedAt,
		DispatchedAt:       detail.DispatchedAt,
		DeliveredAt:        detail.DeliveredAt,
		ReturnedAt:         detail.ReturnedAt,
		Items:              items,
	})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]orderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderSummaryResponse{
			ID:          o.ID.String(),
			OrderNumber: o.OrderNumber,
			EventName:   o.EventName,
			EventDate:   o.EventDate,
			Status:      o.Status,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApproveOrder handles POST /api/v1/orders/:id/approve. A request without a
// code is a staff approval; with a code it is a gated self-approval.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req approveOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	approvedBy, err := kernel.UUIDFromString(req.ApprovedBy)
	if err != nil {
		return badRequest(ctx, "Invalid approved_by: "+err.Error())
	}

	var cmd commands.ApproveOrderCommand
	if req.Code != "" {
		cmd, err = commands.NewSelfApproveOrderCommand(orderID, approvedBy, req.ApproverName, req.Code)
	} else {
		cmd, err = commands.NewApproveOrderCommand(orderID, approvedBy)
	}
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceStatus handles POST /api/v1/orders/:id/status for the warehouse
// stages Preparing and Ready.
func (s *Server) AdvanceStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req advanceStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var target order.Status
	switch req.Target {
	case order.Preparing.String():
		target = order.Preparing
	case order.Ready.String():
		target = order.Ready
	default:
		return badRequest(ctx, "target must be Preparing or Ready")
	}

	cmd, err := commands.NewAdvancePreparationCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.advancePreparationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDelivery handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req assignDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	staffRef, err := kernel.UUIDFromString(req.StaffRef)
	if err != nil {
		return badRequest(ctx, "Invalid staff_ref: "+err.Error())
	}

	vehicleRef, err := kernel.UUIDFromString(req.VehicleRef)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle_ref: "+err.Error())
	}

	cmd, err := commands.NewAssignDeliveryCommand(orderID, staffRef, vehicleRef)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/:id/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/:id/deliver.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req confirmDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	confirmedBy, err := kernel.UUIDFromString(req.ConfirmedBy)
	if err != nil {
		return badRequest(ctx, "Invalid confirmed_by: "+err.Error())
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, confirmedBy, req.RecipientName, req.Code)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnOrder handles POST /api/v1/orders/:id/return.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req returnOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	returned := make(map[kernel.UUID]int, len(req.ReturnedQuantities))
	for productRef, quantity := range req.ReturnedQuantities {
		ref, refErr := kernel.UUIDFromString(productRef)
		if refErr != nil {
			return badRequest(ctx, "Invalid product_ref: "+refErr.Error())
		}
		returned[ref] = quantity
	}

	cmd, err := commands.NewReturnOrderCommand(orderID, returned, req.DamagedNotes, req.MissingNotes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.returnOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachPhoto handles POST /api/v1/orders/:id/photos.
func (s *Server) AttachPhoto(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req attachPhotoRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var phase evidence.PhotoPhase
	switch req.Phase {
	case evidence.PhotoPhaseLoading.String():
		phase = evidence.PhotoPhaseLoading
	case evidence.PhotoPhaseDelivery.String():
		phase = evidence.PhotoPhaseDelivery
	case evidence.PhotoPhaseReturn.String():
		phase = evidence.PhotoPhaseReturn
	default:
		return badRequest(ctx, "phase must be Loading, Delivery, or Return")
	}

	uploadedBy, err := kernel.UUIDFromString(req.UploadedBy)
	if err != nil {
		return badRequest(ctx, "Invalid uploaded_by: "+err.Error())
	}

	cmd, err := commands.NewAttachPhotoCommand(orderID, phase, req.BlobRef, uploadedBy)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.attachPhotoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RequestLoginCode handles POST /api/v1/auth/request-code.
func (s *Server) RequestLoginCode(ctx echo.Context) error {
	var req requestCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid phone: "+err.Error())
	}

	cmd, err := commands.NewIssueCredentialCommand(phone, credential.PurposeLogin)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.issueCredentialHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// VerifyLogin handles POST /api/v1/auth/verify.
func (s *Server) VerifyLogin(ctx echo.Context) error {
	var req verifyCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid phone: "+err.Error())
	}

	cmd, err := commands.NewVerifyLoginCommand(phone, req.Code)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	token, err := s.verifyLoginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tokenResponse{Token: token})
}

// ResendCredential handles POST /api/v1/credentials/resend for any purpose.
func (s *Server) ResendCredential(ctx echo.Context) error {
	var req resendCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid phone: "+err.Error())
	}

	var purpose credential.Purpose
	switch req.Purpose {
	case credential.PurposeLogin.String():
		purpose = credential.PurposeLogin
	case credential.PurposeOrderApproval.String():
		purpose = credential.PurposeOrderApproval
	case credential.PurposeDeliveryConfirmation.String():
		purpose = credential.PurposeDeliveryConfirmation
	default:
		return badRequest(ctx, "purpose must be Login, OrderApproval, or DeliveryConfirmation")
	}

	cmd, err := commands.NewResendCredentialCommand(phone, purpose)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.resendCredentialHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetInventory handles GET /api/v1/inventory.
func (s *Server) GetInventory(ctx echo.Context) error {
	query := queries.NewGetInventoryQuery()

	lines, err := s.getInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]inventoryLineResponse, 0, len(lines))
	for _, line := range lines {
		response = append(response, inventoryLineResponse{
			ProductRef: line.ProductRef.String(),
			Available:  line.Available,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
