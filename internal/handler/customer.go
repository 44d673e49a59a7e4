package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/stocklot/commerce-api/internal/repository"
	"github.com/stocklot/commerce-api/internal/server"
	"github.com/stocklot/commerce-api/internal/service"
	"github.com/stocklot/commerce-api/internal/validation"
)

// CustomerHandler serves customer CRUD endpoints.
type CustomerHandler struct {
	Handler
	customers *service.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(s *server.Server, services *service.Services) *CustomerHandler {
	return &CustomerHandler{
		Handler:   NewHandler(s),
		customers: services.Customers,
	}
}

// GetCustomerRequest carries the customer id from the path. The id
// is not validated as numeric; bad input surfaces as a store error.
type GetCustomerRequest struct {
	CustomerID string `param:"customerId"`
}

func (r *GetCustomerRequest) Validate() error { return validation.Struct(r) }

// GetCustomer looks up a customer by id.
func (h *CustomerHandler) GetCustomer(c echo.Context, req *GetCustomerRequest) (*repository.Customer, error) {
	return h.customers.Get(c.Request().Context(), req.CustomerID)
}

// CreateCustomerRequest is the body of POST /customers.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
}

func (r *CreateCustomerRequest) Validate() error { return validation.Struct(r) }

// CreateCustomerResponse echoes the input plus the generated id.
type CreateCustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// CreateCustomer inserts a customer.
func (h *CustomerHandler) CreateCustomer(c echo.Context, req *CreateCustomerRequest) (*CreateCustomerResponse, error) {
	id, err := h.customers.Create(c.Request().Context(), req.Name, req.Address, req.City, req.Country)
	if err != nil {
		return nil, err
	}

	return &CreateCustomerResponse{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	}, nil
}

// UpdateCustomerRequest is the body of PUT /customers/:customerId.
type UpdateCustomerRequest struct {
	CustomerID string `param:"customerId"`
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

func (r *UpdateCustomerRequest) Validate() error { return validation.Struct(r) }

// UpdateCustomerResponse echoes the input plus the path id.
type UpdateCustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// UpdateCustomer replaces every field of an existing customer.
func (h *CustomerHandler) UpdateCustomer(c echo.Context, req *UpdateCustomerRequest) (*UpdateCustomerResponse, error) {
	err := h.customers.Update(c.Request().Context(), req.CustomerID, req.Name, req.Address, req.City, req.Country)
	if err != nil {
		return nil, err
	}

	return &UpdateCustomerResponse{
		ID:      req.CustomerID,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	}, nil
}

// DeleteCustomerRequest carries the customer id from the path.
type DeleteCustomerRequest struct {
	CustomerID string `param:"customerId"`
}

func (r *DeleteCustomerRequest) Validate() error { return validation.Struct(r) }

// DeleteCustomer removes a customer without orders.
func (h *CustomerHandler) DeleteCustomer(c echo.Context, req *DeleteCustomerRequest) error {
	return h.customers.Delete(c.Request().Context(), req.CustomerID)
}
