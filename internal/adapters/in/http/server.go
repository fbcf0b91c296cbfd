package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	addItemHandler       commands.AddItemCommandHandler
	checkoutOrderHandler commands.CheckoutOrderCommandHandler

	// Query handlers
	getOrderHandler queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	checkoutOrderHandler commands.CheckoutOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		addItemHandler:       addItemHandler,
		checkoutOrderHandler: checkoutOrderHandler,
		getOrderHandler:      getOrderHandler,
	}
}

// RegisterRoutes attaches the server's handlers to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.POST("/api/v1/orders/:id/items", s.AddItem)
	e.POST("/api/v1/orders/:id/checkout", s.Checkout)
}

// CreateOrder handles POST /api/v1/orders - creates a new order for a customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrderRequest
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, newOrder.CustomerName, newOrder.CustomerEmail)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{ID: orderID.String()})
}

// AddItem handles POST /api/v1/orders/:id/items - appends a product or
// bundle to an order.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var newItem NewItemRequest
	if bindErr := ctx.Bind(&newItem); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	item, err := buildItem(newItem)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item data: " + err.Error(),
		})
	}

	cmd, err := commands.NewAddItemCommand(orderID, item)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item data: " + err.Error(),
		})
	}

	if handleErr := s.addItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}

		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to add item",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// Checkout handles POST /api/v1/orders/:id/checkout - runs the checkout
// workflow for an order with the selected payment method.
func (s *Server) Checkout(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var checkout CheckoutRequest
	if bindErr := ctx.Bind(&checkout); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCheckoutOrderCommand(orderID, checkout.PaymentMethod)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid checkout data: " + err.Error(),
		})
	}

	if handleErr := s.checkoutOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.checkoutError(ctx, handleErr)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, CheckoutResponse{
		Status: view.Status,
		Total:  view.Total,
	})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	items := make([]ItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = ItemResponse{
			Name:  item.Name,
			Price: item.Price,
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:       view.ID.String(),
		Customer: view.Customer,
		Status:   view.Status,
		Total:    view.Total,
		Items:    items,
	})
}

// checkoutError maps checkout workflow failures to HTTP responses.
func (s *Server) checkoutError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, services.ErrPaymentFailed):
		return ctx.JSON(http.StatusPaymentRequired, Error{
			Code:    http.StatusPaymentRequired,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrShipmentFailed):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Checkout failed: " + err.Error(),
		})
	}
}

// buildItem converts an item request into a domain priced item. A request
// with child items becomes a bundle, built recursively; otherwise it
// becomes a plain product.
func buildItem(req NewItemRequest) (product.PricedItem, error) {
	if len(req.Items) > 0 {
		bundle, err := product.NewBundle(req.Name)
		if err != nil {
			return nil, err
		}

		for _, child := range req.Items {
			item, err := buildItem(child)
			if err != nil {
				return nil, err
			}

			if err := bundle.Add(item); err != nil {
				return nil, err
			}
		}

		return bundle, nil
	}

	if req.Price == nil {
		return nil, errs.NewValueIsRequiredError("price")
	}

	price, err := kernel.NewPrice(*req.Price)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(req.Name, price)
}
