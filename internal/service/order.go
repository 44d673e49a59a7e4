package service

import (
	"context"
	"fmt"

	"github.com/stocklot/commerce-api/internal/errs"
	"github.com/stocklot/commerce-api/internal/repository"
	"github.com/stocklot/commerce-api/internal/server"
)

type orderStore interface {
	Insert(ctx context.Context, customerID, orderDate, orderReference string) (int64, error)
	DeleteItems(ctx context.Context, orderID string) error
	Delete(ctx context.Context, orderID string) error
	ListForCustomer(ctx context.Context, customerID string) ([]repository.OrderLine, error)
}

type orderCustomers interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// OrderService covers order creation, deletion, and listing.
type OrderService struct {
	orders    orderStore
	customers orderCustomers
	tx        txRunner
}

// NewOrderService constructs an OrderService over the repositories.
func NewOrderService(s *server.Server, repos *repository.Repositories) *OrderService {
	return &OrderService{
		orders:    repos.Orders,
		customers: repos.Customers,
		tx:        repos,
	}
}

// CreateForCustomer inserts an order for an existing customer.
// A missing customer is a 400, matching the create-with-parent
// semantics of the availability endpoint.
func (s *OrderService) CreateForCustomer(ctx context.Context, customerID, orderDate, orderReference string) (int64, error) {
	var id int64
	err := s.tx.RunTx(ctx, func(ctx context.Context) error {
		ok, err := s.customers.Exists(ctx, customerID)
		if err != nil {
			return err
		}
		if !ok {
			return errs.NewBadRequestError(fmt.Sprintf("Customer with ID %s not found", customerID))
		}

		id, err = s.orders.Insert(ctx, customerID, orderDate, orderReference)
		return err
	})
	return id, err
}

// Delete removes an order and its items, items first. Deleting an
// order that does not exist still succeeds with nothing removed.
func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	return s.tx.RunTx(ctx, func(ctx context.Context) error {
		if err := s.orders.DeleteItems(ctx, orderID); err != nil {
			return err
		}
		return s.orders.Delete(ctx, orderID)
	})
}

// ListForCustomer returns the customer's orders joined with their
// items, products, suppliers, and prices.
func (s *OrderService) ListForCustomer(ctx context.Context, customerID string) ([]repository.OrderLine, error) {
	return s.orders.ListForCustomer(ctx, customerID)
}
