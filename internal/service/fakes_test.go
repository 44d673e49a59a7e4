package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stocklot/commerce-api/internal/repository"
)

// passthroughTx runs the function without a real transaction.
type passthroughTx struct{}

func (passthroughTx) RunTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeProducts struct {
	existing map[int64]bool
	nextID   int64
	inserted []string
	offers   []repository.ProductOffer
	names    []repository.ProductName
	searched []string
}

func (f *fakeProducts) Insert(ctx context.Context, name string) (int64, error) {
	f.inserted = append(f.inserted, name)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeProducts) Exists(ctx context.Context, id int64) (bool, error) {
	return f.existing[id], nil
}

func (f *fakeProducts) ListOffers(ctx context.Context) ([]repository.ProductOffer, error) {
	return f.offers, nil
}

func (f *fakeProducts) SearchByName(ctx context.Context, name string) ([]repository.ProductName, error) {
	f.searched = append(f.searched, name)
	return f.names, nil
}

type fakeSuppliers struct {
	existing map[int64]bool
}

func (f *fakeSuppliers) Exists(ctx context.Context, id int64) (bool, error) {
	return f.existing[id], nil
}

type insertedAvailability struct {
	productID  int64
	supplierID int64
	price      decimal.Decimal
}

type fakeAvailability struct {
	nextID   int64
	inserted []insertedAvailability
}

func (f *fakeAvailability) Insert(ctx context.Context, productID, supplierID int64, price decimal.Decimal) (int64, error) {
	f.inserted = append(f.inserted, insertedAvailability{productID, supplierID, price})
	f.nextID++
	return f.nextID, nil
}

type fakeCustomers struct {
	existing map[string]*repository.Customer
	nextID   int64
	updated  []string
	deleted  []string
}

func (f *fakeCustomers) Insert(ctx context.Context, name, address, city, country string) (int64, error) {
	f.nextID++
	return f.nextID, nil
}

func (f *fakeCustomers) GetByID(ctx context.Context, id string) (*repository.Customer, error) {
	return f.existing[id], nil
}

func (f *fakeCustomers) Exists(ctx context.Context, id string) (bool, error) {
	return f.existing[id] != nil, nil
}

func (f *fakeCustomers) Update(ctx context.Context, id, name, address, city, country string) error {
	f.updated = append(f.updated, id)
	return nil
}

func (f *fakeCustomers) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeOrders struct {
	withOrders map[string]bool
	nextID     int64
	lines      []repository.OrderLine

	// ops records mutation ordering, e.g. "delete_items:5", "delete_order:5".
	ops []string
}

func (f *fakeOrders) Insert(ctx context.Context, customerID, orderDate, orderReference string) (int64, error) {
	f.ops = append(f.ops, "insert:"+customerID)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeOrders) DeleteItems(ctx context.Context, orderID string) error {
	f.ops = append(f.ops, "delete_items:"+orderID)
	return nil
}

func (f *fakeOrders) Delete(ctx context.Context, orderID string) error {
	f.ops = append(f.ops, "delete_order:"+orderID)
	return nil
}

func (f *fakeOrders) AnyForCustomer(ctx context.Context, customerID string) (bool, error) {
	return f.withOrders[customerID], nil
}

func (f *fakeOrders) ListForCustomer(ctx context.Context, customerID string) ([]repository.OrderLine, error) {
	return f.lines, nil
}
