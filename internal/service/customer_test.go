package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stocklot/commerce-api/internal/repository"
)

func newCustomerService(customers *fakeCustomers, orders *fakeOrders) *CustomerService {
	return &CustomerService{
		customers: customers,
		orders:    orders,
		tx:        passthroughTx{},
	}
}

func TestGetCustomerNotFound(t *testing.T) {
	svc := newCustomerService(&fakeCustomers{existing: map[string]*repository.Customer{}}, &fakeOrders{})

	_, err := svc.Get(context.Background(), "999")

	requireHTTPError(t, err, http.StatusNotFound, "Customer with ID 999 not found")
}

func TestGetCustomerOK(t *testing.T) {
	ann := &repository.Customer{ID: 1, Name: "Ann", Address: "1 Rd", City: "X", Country: "Y"}
	svc := newCustomerService(&fakeCustomers{existing: map[string]*repository.Customer{"1": ann}}, &fakeOrders{})

	customer, err := svc.Get(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, ann, customer)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	customers := &fakeCustomers{existing: map[string]*repository.Customer{}}
	svc := newCustomerService(customers, &fakeOrders{})

	err := svc.Update(context.Background(), "42", "Ann", "1 Rd", "X", "Y")

	requireHTTPError(t, err, http.StatusNotFound, "Customer with ID 42 not found")
	assert.Empty(t, customers.updated)
}

func TestUpdateCustomerOK(t *testing.T) {
	customers := &fakeCustomers{existing: map[string]*repository.Customer{
		"42": {ID: 42, Name: "Ann"},
	}}
	svc := newCustomerService(customers, &fakeOrders{})

	err := svc.Update(context.Background(), "42", "Ann", "2 Rd", "X", "Y")

	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, customers.updated)
}

func TestDeleteCustomerWithOrders(t *testing.T) {
	customers := &fakeCustomers{existing: map[string]*repository.Customer{
		"7": {ID: 7, Name: "Ann"},
	}}
	orders := &fakeOrders{withOrders: map[string]bool{"7": true}}
	svc := newCustomerService(customers, orders)

	err := svc.Delete(context.Background(), "7")

	requireHTTPError(t, err, http.StatusBadRequest, "Customer with ID 7 has orders and cannot be deleted")
	assert.Empty(t, customers.deleted, "customer record must stay intact")
}

func TestDeleteCustomerWithoutOrders(t *testing.T) {
	customers := &fakeCustomers{existing: map[string]*repository.Customer{
		"7": {ID: 7, Name: "Ann"},
	}}
	svc := newCustomerService(customers, &fakeOrders{withOrders: map[string]bool{}})

	err := svc.Delete(context.Background(), "7")

	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, customers.deleted)
}
