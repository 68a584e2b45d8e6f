package http

import (
	"net/http"
	"time"

	"burgershop/internal/core/application/usecases/commands"
	"burgershop/internal/core/application/usecases/queries"
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP API for the burger shop.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	addLineItemsHandler      commands.AddLineItemsCommandHandler
	removeLineItemHandler    commands.RemoveLineItemCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderQueryHandler
	getOrdersHandler          queries.GetOrdersQueryHandler
	getOrderStatisticsHandler queries.GetOrderStatisticsQueryHandler
	getAvailableProducts      queries.GetAvailableProductsQueryHandler
	quoteLineItemHandler      queries.QuoteLineItemQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addLineItemsHandler commands.AddLineItemsCommandHandler,
	removeLineItemHandler commands.RemoveLineItemCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderStatisticsHandler queries.GetOrderStatisticsQueryHandler,
	getAvailableProducts queries.GetAvailableProductsQueryHandler,
	quoteLineItemHandler queries.QuoteLineItemQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		addLineItemsHandler:       addLineItemsHandler,
		removeLineItemHandler:     removeLineItemHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		deleteOrderHandler:        deleteOrderHandler,
		getOrderHandler:           getOrderHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderStatisticsHandler: getOrderStatisticsHandler,
		getAvailableProducts:      getAvailableProducts,
		quoteLineItemHandler:      quoteLineItemHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/stats/summary", s.GetOrderStatistics)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/items", s.AddLineItems)
	api.DELETE("/orders/:id/items/:itemId", s.RemoveLineItem)
	api.GET("/products", s.GetProducts)
	api.POST("/products/:id/quote", s.QuoteLineItem)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var customerID *kernel.UUID
	if req.CustomerID != nil {
		id, idErr := kernel.UUIDFromString(*req.CustomerID)
		if idErr != nil {
			return errorResponse(ctx, idErr)
		}
		customerID = &id
	}

	lineItems, err := toLineItemInputs(req.Items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), paymentMethod, customerID, lineItems)
	if err != nil {
		return errorResponse(ctx, err)
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(aggregate))
}

// GetOrder handles GET /api/orders/:id - retrieves one order with its
// line items, customizations, and status history.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewToResponse(view))
}

// GetOrders handles GET /api/orders - lists orders with optional
// status, payment_method, from, and to filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	status := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		status = parsed
	}

	paymentMethod := order.PaymentUnknown
	if raw := ctx.QueryParam("payment_method"); raw != "" {
		parsed, err := order.PaymentMethodFromString(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		paymentMethod = parsed
	}

	from, err := parseTimeParam(ctx.QueryParam("from"), "from")
	if err != nil {
		return errorResponse(ctx, err)
	}
	to, err := parseTimeParam(ctx.QueryParam("to"), "to")
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(status, paymentMethod, from, to)
	if err != nil {
		return errorResponse(ctx, err)
	}

	views, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(views))
	for i, view := range views {
		response[i] = OrderSummaryResponse{
			ID:            view.ID.String(),
			Status:        view.Status,
			PaymentMethod: view.PaymentMethod,
			Total:         view.Total.String(),
			CreatedAt:     view.CreatedAt,
			ItemCount:     view.LineItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	aggregate, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

// DeleteOrder handles DELETE /api/orders/:id - removes an order and its
// child records.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddLineItems handles POST /api/orders/:id/items - adds priced line
// items to an open order.
func (s *Server) AddLineItems(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req AddItemsRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lineItems, err := toLineItemInputs(req.Items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAddLineItemsCommand(orderID, lineItems)
	if err != nil {
		return errorResponse(ctx, err)
	}

	aggregate, err := s.addLineItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

// RemoveLineItem handles DELETE /api/orders/:id/items/:itemId - removes
// one line item from an open order.
func (s *Server) RemoveLineItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	lineItemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRemoveLineItemCommand(orderID, lineItemID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	aggregate, err := s.removeLineItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

// GetOrderStatistics handles GET /api/orders/stats/summary - serves the
// sales dashboard projections.
func (s *Server) GetOrderStatistics(ctx echo.Context) error {
	query := queries.NewGetOrderStatisticsQuery()

	stats, err := s.getOrderStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := StatisticsResponse{
		TotalOrders:           stats.TotalOrders,
		OrdersByStatus:        make([]StatusCountResponse, len(stats.OrdersByStatus)),
		TopProducts:           make([]ProductSalesResponse, len(stats.TopProducts)),
		TopExtraIngredients:   make([]IngredientDemandResponse, len(stats.TopExtraIngredients)),
		RevenueByPayment:      make([]PaymentRevenueResponse, len(stats.RevenueByPayment)),
		MostCustomizedProduct: make([]ProductCustomizationsResponse, len(stats.MostCustomizedProduct)),
	}
	for i, entry := range stats.OrdersByStatus {
		response.OrdersByStatus[i] = StatusCountResponse{
			Status: entry.Status,
			Count:  entry.Count,
		}
	}
	for i, entry := range stats.TopProducts {
		response.TopProducts[i] = ProductSalesResponse{
			ProductID: entry.ProductID.String(),
			Name:      entry.Name,
			Category:  entry.Category,
			UnitsSold: entry.UnitsSold,
			Revenue:   entry.Revenue.String(),
		}
	}
	for i, entry := range stats.TopExtraIngredients {
		response.TopExtraIngredients[i] = IngredientDemandResponse{
			IngredientID: entry.IngredientID.String(),
			Name:         entry.Name,
			Unit:         entry.Unit,
			Requested:    entry.Requested,
		}
	}
	for i, entry := range stats.RevenueByPayment {
		response.RevenueByPayment[i] = PaymentRevenueResponse{
			PaymentMethod: entry.PaymentMethod,
			OrderCount:    entry.OrderCount,
			Revenue:       entry.Revenue.String(),
		}
	}
	for i, entry := range stats.MostCustomizedProduct {
		response.MostCustomizedProduct[i] = ProductCustomizationsResponse{
			ProductID:       entry.ProductID.String(),
			Name:            entry.Name,
			Category:        entry.Category,
			Customizations:  entry.Customizations,
			CustomizedItems: entry.CustomizedItems,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProducts handles GET /api/products - serves the menu of available
// products.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetAvailableProductsQuery()

	menu, err := s.getAvailableProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ProductResponse, len(menu))
	for i, entry := range menu {
		response[i] = ProductResponse{
			ID:        entry.ID.String(),
			Name:      entry.Name,
			Category:  entry.Category,
			BasePrice: entry.BasePrice.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// QuoteLineItem handles POST /api/products/:id/quote - prices a line
// item without placing an order.
func (s *Server) QuoteLineItem(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req QuoteRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customizations, err := toCustomizations(req.Customizations)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewQuoteLineItemQuery(productID, customizations)
	if err != nil {
		return errorResponse(ctx, err)
	}

	quote, err := s.quoteLineItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, QuoteResponse{
		ProductID:   quote.ProductID.String(),
		ProductName: quote.ProductName,
		BasePrice:   quote.BasePrice.String(),
		Subtotal:    quote.Subtotal.String(),
	})
}

// parseTimeParam parses an RFC 3339 query parameter. An empty value means
// the filter is unset and maps to the zero time.
func parseTimeParam(raw, name string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return t, nil
}
