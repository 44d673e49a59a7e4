package service

import (
	"context"
	"fmt"

	"github.com/stocklot/commerce-api/internal/errs"
	"github.com/stocklot/commerce-api/internal/repository"
	"github.com/stocklot/commerce-api/internal/server"
)

type customerStore interface {
	Insert(ctx context.Context, name, address, city, country string) (int64, error)
	GetByID(ctx context.Context, id string) (*repository.Customer, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id, name, address, city, country string) error
	Delete(ctx context.Context, id string) error
}

type customerOrders interface {
	AnyForCustomer(ctx context.Context, customerID string) (bool, error)
}

// CustomerService covers customer CRUD.
type CustomerService struct {
	customers customerStore
	orders    customerOrders
	tx        txRunner
}

// NewCustomerService constructs a CustomerService over the repositories.
func NewCustomerService(s *server.Server, repos *repository.Repositories) *CustomerService {
	return &CustomerService{
		customers: repos.Customers,
		orders:    repos.Orders,
		tx:        repos,
	}
}

func customerNotFound(id string) *errs.HTTPError {
	return errs.NewNotFoundError(fmt.Sprintf("Customer with ID %s not found", id))
}

// Get looks up a customer by id, returning a 404 error when absent.
func (s *CustomerService) Get(ctx context.Context, id string) (*repository.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, customerNotFound(id)
	}
	return customer, nil
}

// Create inserts a customer and returns its id.
func (s *CustomerService) Create(ctx context.Context, name, address, city, country string) (int64, error) {
	return s.customers.Insert(ctx, name, address, city, country)
}

// Update replaces every field of an existing customer. The existence
// check and the update run in one transaction; a missing customer is
// a 404.
func (s *CustomerService) Update(ctx context.Context, id, name, address, city, country string) error {
	return s.tx.RunTx(ctx, func(ctx context.Context) error {
		ok, err := s.customers.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return customerNotFound(id)
		}
		return s.customers.Update(ctx, id, name, address, city, country)
	})
}

// Delete removes a customer. A customer that still has orders cannot
// be deleted; the check and the delete run in one transaction.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.tx.RunTx(ctx, func(ctx context.Context) error {
		hasOrders, err := s.orders.AnyForCustomer(ctx, id)
		if err != nil {
			return err
		}
		if hasOrders {
			return errs.NewBadRequestError(fmt.Sprintf("Customer with ID %s has orders and cannot be deleted", id))
		}
		return s.customers.Delete(ctx, id)
	})
}
