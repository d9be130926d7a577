package http

import (
	"net/http"
	"strconv"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	listPickupPointsHandler  queries.ListPickupPointsQueryHandler
	listOrderStatusesHandler queries.ListOrderStatusesQueryHandler
	getOrdersSummaryHandler  queries.GetOrdersSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listPickupPointsHandler queries.ListPickupPointsQueryHandler,
	listOrderStatusesHandler queries.ListOrderStatusesQueryHandler,
	getOrdersSummaryHandler queries.GetOrdersSummaryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		listPickupPointsHandler:  listPickupPointsHandler,
		listOrderStatusesHandler: listOrderStatusesHandler,
		getOrdersSummaryHandler:  getOrdersSummaryHandler,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
// The summary route is registered before the parameterized order route
// so "summary" is never captured as an order id.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/summary", s.GetOrdersSummary)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/pickup-points", s.ListPickupPoints)
	api.GET("/order-statuses", s.ListOrderStatuses)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderCommandParams{
		UserID:          request.UserID,
		RecipientName:   request.RecipientName,
		RecipientPhone:  request.RecipientPhone,
		DeliveryAddress: request.DeliveryAddress,
		DeliveryType:    request.DeliveryType,
		PickupPointID:   request.PickupPointID,
		DeliveryPointID: request.DeliveryPointID,
		Comment:         request.Comment,
		WeightKg:        request.Weight,
		LengthCm:        request.Length,
		WidthCm:         request.Width,
		HeightCm:        request.Height,
	})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}

	return ctx.JSON(http.StatusCreated, newOrderResponse(aggregate))
}

// ListOrders handles GET /api/v1/orders - lists orders, optionally
// filtered by the user_id query parameter.
func (s *Server) ListOrders(ctx echo.Context) error {
	var userID *int64
	if raw := ctx.QueryParam("user_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "user_id must be an integer",
			})
		}
		userID = &parsed
	}

	query, err := queries.NewListOrdersQuery(userID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "order id must be an integer",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status - moves an order
// to a new status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "order id must be an integer",
		})
	}

	var request ChangeOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	aggregate, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(aggregate))
}

// ListPickupPoints handles GET /api/v1/pickup-points - lists active pickup points.
func (s *Server) ListPickupPoints(ctx echo.Context) error {
	query := queries.NewListPickupPointsQuery()

	points, err := s.listPickupPointsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}

	return ctx.JSON(http.StatusOK, points)
}

// ListOrderStatuses handles GET /api/v1/order-statuses - lists the status taxonomy.
func (s *Server) ListOrderStatuses(ctx echo.Context) error {
	query := queries.NewListOrderStatusesQuery()

	statuses, err := s.listOrderStatusesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}

	return ctx.JSON(http.StatusOK, statuses)
}

// GetOrdersSummary handles GET /api/v1/orders/summary - returns per-status counts.
func (s *Server) GetOrdersSummary(ctx echo.Context) error {
	query := queries.NewGetOrdersSummaryQuery()

	rows, err := s.getOrdersSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}

	return ctx.JSON(http.StatusOK, rows)
}
