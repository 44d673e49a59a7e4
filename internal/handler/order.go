package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/stocklot/commerce-api/internal/repository"
	"github.com/stocklot/commerce-api/internal/server"
	"github.com/stocklot/commerce-api/internal/service"
	"github.com/stocklot/commerce-api/internal/validation"
)

// OrderHandler serves order endpoints.
type OrderHandler struct {
	Handler
	orders *service.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(s *server.Server, services *service.Services) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),
		orders:  services.Orders,
	}
}

// CreateOrderRequest is the body of POST /customers/:customerId/orders.
// The order date passes through to the store as text.
type CreateOrderRequest struct {
	CustomerID     string `param:"customerId"`
	OrderDate      string `json:"orderDate" validate:"required"`
	OrderReference string `json:"orderReference" validate:"required"`
}

func (r *CreateOrderRequest) Validate() error { return validation.Struct(r) }

// CreateOrderResponse echoes the input plus the generated id.
type CreateOrderResponse struct {
	ID             int64  `json:"id"`
	CustomerID     string `json:"customerId"`
	OrderDate      string `json:"orderDate"`
	OrderReference string `json:"orderReference"`
}

// CreateOrder inserts an order for an existing customer.
func (h *OrderHandler) CreateOrder(c echo.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	id, err := h.orders.CreateForCustomer(c.Request().Context(), req.CustomerID, req.OrderDate, req.OrderReference)
	if err != nil {
		return nil, err
	}

	return &CreateOrderResponse{
		ID:             id,
		CustomerID:     req.CustomerID,
		OrderDate:      req.OrderDate,
		OrderReference: req.OrderReference,
	}, nil
}

// DeleteOrderRequest carries the order id from the path.
type DeleteOrderRequest struct {
	OrderID string `param:"orderId"`
}

func (r *DeleteOrderRequest) Validate() error { return validation.Struct(r) }

// DeleteOrder removes an order and its items.
func (h *OrderHandler) DeleteOrder(c echo.Context, req *DeleteOrderRequest) error {
	return h.orders.Delete(c.Request().Context(), req.OrderID)
}

// ListCustomerOrdersRequest carries the customer id from the path.
type ListCustomerOrdersRequest struct {
	CustomerID string `param:"customerId"`
}

func (r *ListCustomerOrdersRequest) Validate() error { return validation.Struct(r) }

// ListCustomerOrders returns the customer's orders joined with their
// items, one row per (order, item) pair.
func (h *OrderHandler) ListCustomerOrders(c echo.Context, req *ListCustomerOrdersRequest) ([]repository.OrderLine, error) {
	return h.orders.ListForCustomer(c.Request().Context(), req.CustomerID)
}
