package handler

import (
	"github.com/stocklot/commerce-api/internal/server"
	"github.com/stocklot/commerce-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Catalog   *CatalogHandler
	Customers *CustomerHandler
	Orders    *OrderHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
		Catalog:   NewCatalogHandler(s, services),
		Customers: NewCustomerHandler(s, services),
		Orders:    NewOrderHandler(s, services),
	}
}
