package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stocklot/commerce-api/internal/repository"
)

func newOrderService(orders *fakeOrders, customers *fakeCustomers) *OrderService {
	return &OrderService{
		orders:    orders,
		customers: customers,
		tx:        passthroughTx{},
	}
}

func TestCreateOrderMissingCustomer(t *testing.T) {
	orders := &fakeOrders{}
	svc := newOrderService(orders, &fakeCustomers{existing: map[string]*repository.Customer{}})

	_, err := svc.CreateForCustomer(context.Background(), "3", "2024-05-01", "ORD-1")

	requireHTTPError(t, err, http.StatusBadRequest, "Customer with ID 3 not found")
	assert.Empty(t, orders.ops, "no order may be inserted")
}

func TestCreateOrderOK(t *testing.T) {
	orders := &fakeOrders{}
	customers := &fakeCustomers{existing: map[string]*repository.Customer{
		"3": {ID: 3, Name: "Ann"},
	}}
	svc := newOrderService(orders, customers)

	id, err := svc.CreateForCustomer(context.Background(), "3", "2024-05-01", "ORD-1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, []string{"insert:3"}, orders.ops)
}

func TestDeleteOrderRemovesItemsFirst(t *testing.T) {
	orders := &fakeOrders{}
	svc := newOrderService(orders, &fakeCustomers{})

	err := svc.Delete(context.Background(), "5")

	require.NoError(t, err)
	assert.Equal(t, []string{"delete_items:5", "delete_order:5"}, orders.ops)
}

func TestDeleteOrderMissingStillSucceeds(t *testing.T) {
	// Deleting zero rows is not an error anywhere in the chain.
	svc := newOrderService(&fakeOrders{}, &fakeCustomers{})

	require.NoError(t, svc.Delete(context.Background(), "404"))
}

func TestListForCustomer(t *testing.T) {
	orders := &fakeOrders{lines: []repository.OrderLine{
		{OrderReference: "ORD-1", ProductName: "Widget", SupplierName: "Acme", Quantity: 2},
	}}
	svc := newOrderService(orders, &fakeCustomers{})

	lines, err := svc.ListForCustomer(context.Background(), "3")

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "ORD-1", lines[0].OrderReference)
}
