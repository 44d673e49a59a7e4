// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, performs the referential
// pre-checks the API promises, and calls repository methods to
// interact with the data. Multi-statement operations run inside a
// single transaction with the pre-check ordering preserved.
package service

import (
	"context"

	"github.com/stocklot/commerce-api/internal/repository"
	"github.com/stocklot/commerce-api/internal/server"
)

// txRunner runs a function inside one database transaction.
// Implemented by *repository.Repositories.
type txRunner interface {
	RunTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Services is a container for all service instances.
type Services struct {
	Catalog   *CatalogService
	Customers *CustomerService
	Orders    *OrderService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Catalog:   NewCatalogService(s, repos),
		Customers: NewCustomerService(s, repos),
		Orders:    NewOrderService(s, repos),
	}, nil
}
