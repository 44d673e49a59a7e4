package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stocklot/commerce-api/internal/repository"
	"github.com/stocklot/commerce-api/internal/server"
	"github.com/stocklot/commerce-api/internal/service"
	"github.com/stocklot/commerce-api/internal/validation"
)

// CatalogHandler serves product, supplier, and availability endpoints.
type CatalogHandler struct {
	Handler
	catalog *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(s *server.Server, services *service.Services) *CatalogHandler {
	return &CatalogHandler{
		Handler: NewHandler(s),
		catalog: services.Catalog,
	}
}

// ListProductsRequest has no input.
type ListProductsRequest struct{}

func (r *ListProductsRequest) Validate() error { return validation.Struct(r) }

// ListProducts returns every product/supplier offer with its price.
func (h *CatalogHandler) ListProducts(c echo.Context, req *ListProductsRequest) ([]repository.ProductOffer, error) {
	return h.catalog.ListProducts(c.Request().Context())
}

// SearchProductsRequest carries the name substring from the path.
type SearchProductsRequest struct {
	Name string `param:"name"`
}

func (r *SearchProductsRequest) Validate() error { return validation.Struct(r) }

// SearchProducts returns products whose name contains the path segment.
func (h *CatalogHandler) SearchProducts(c echo.Context, req *SearchProductsRequest) ([]repository.ProductName, error) {
	return h.catalog.SearchProducts(c.Request().Context(), req.Name)
}

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *CreateProductRequest) Validate() error { return validation.Struct(r) }

// CreateProductResponse echoes the input plus the generated id.
type CreateProductResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateProduct inserts a product.
func (h *CatalogHandler) CreateProduct(c echo.Context, req *CreateProductRequest) (*CreateProductResponse, error) {
	id, err := h.catalog.CreateProduct(c.Request().Context(), req.Name)
	if err != nil {
		return nil, err
	}

	return &CreateProductResponse{
		ID:   id,
		Name: req.Name,
	}, nil
}

// CreateAvailabilityRequest is the body of POST /availability.
// Price intentionally has no required tag: a missing or zero price
// must produce the positive-price message, not a generic one.
type CreateAvailabilityRequest struct {
	ProductID  int64           `json:"productId" validate:"required"`
	Price      decimal.Decimal `json:"price"`
	SupplierID int64           `json:"supplierId" validate:"required"`
}

func (r *CreateAvailabilityRequest) Validate() error { return validation.Struct(r) }

// CreateAvailabilityResponse echoes the input plus the generated id.
type CreateAvailabilityResponse struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"productId"`
	Price      decimal.Decimal `json:"price"`
	SupplierID int64           `json:"supplierId"`
}

// CreateAvailability links a product and a supplier with a unit price.
func (h *CatalogHandler) CreateAvailability(c echo.Context, req *CreateAvailabilityRequest) (*CreateAvailabilityResponse, error) {
	id, err := h.catalog.CreateAvailability(c.Request().Context(), req.ProductID, req.SupplierID, req.Price)
	if err != nil {
		return nil, err
	}

	return &CreateAvailabilityResponse{
		ID:         id,
		ProductID:  req.ProductID,
		Price:      req.Price,
		SupplierID: req.SupplierID,
	}, nil
}
