package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stocklot/commerce-api/internal/errs"
)

func newCatalogService(products *fakeProducts, suppliers *fakeSuppliers, availability *fakeAvailability) *CatalogService {
	return &CatalogService{
		products:     products,
		suppliers:    suppliers,
		availability: availability,
		tx:           passthroughTx{},
	}
}

func requireHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
}

func TestCreateAvailabilityMissingProduct(t *testing.T) {
	products := &fakeProducts{existing: map[int64]bool{}}
	suppliers := &fakeSuppliers{existing: map[int64]bool{2: true}}
	availability := &fakeAvailability{}
	svc := newCatalogService(products, suppliers, availability)

	_, err := svc.CreateAvailability(context.Background(), 1, 2, decimal.NewFromInt(10))

	requireHTTPError(t, err, http.StatusBadRequest, "Product with ID 1 not found")
	assert.Empty(t, availability.inserted, "no row may be created")
}

func TestCreateAvailabilityMissingSupplier(t *testing.T) {
	products := &fakeProducts{existing: map[int64]bool{1: true}}
	suppliers := &fakeSuppliers{existing: map[int64]bool{}}
	availability := &fakeAvailability{}
	svc := newCatalogService(products, suppliers, availability)

	_, err := svc.CreateAvailability(context.Background(), 1, 7, decimal.NewFromInt(10))

	requireHTTPError(t, err, http.StatusBadRequest, "Supplier with ID 7 not found")
	assert.Empty(t, availability.inserted)
}

func TestCreateAvailabilityNonPositivePrice(t *testing.T) {
	products := &fakeProducts{existing: map[int64]bool{1: true}}
	suppliers := &fakeSuppliers{existing: map[int64]bool{2: true}}

	for _, price := range []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-3),
	} {
		availability := &fakeAvailability{}
		svc := newCatalogService(products, suppliers, availability)

		_, err := svc.CreateAvailability(context.Background(), 1, 2, price)

		requireHTTPError(t, err, http.StatusBadRequest, "Price must be a positive integer")
		assert.Empty(t, availability.inserted)
	}
}

func TestCreateAvailabilityChecksProductBeforeSupplier(t *testing.T) {
	// Both missing: the product message wins, matching check ordering.
	svc := newCatalogService(
		&fakeProducts{existing: map[int64]bool{}},
		&fakeSuppliers{existing: map[int64]bool{}},
		&fakeAvailability{},
	)

	_, err := svc.CreateAvailability(context.Background(), 5, 6, decimal.NewFromInt(1))

	requireHTTPError(t, err, http.StatusBadRequest, "Product with ID 5 not found")
}

func TestCreateAvailabilityOK(t *testing.T) {
	products := &fakeProducts{existing: map[int64]bool{1: true}}
	suppliers := &fakeSuppliers{existing: map[int64]bool{2: true}}
	availability := &fakeAvailability{}
	svc := newCatalogService(products, suppliers, availability)

	price := decimal.RequireFromString("19.99")
	id, err := svc.CreateAvailability(context.Background(), 1, 2, price)

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, availability.inserted, 1)
	assert.Equal(t, int64(1), availability.inserted[0].productID)
	assert.Equal(t, int64(2), availability.inserted[0].supplierID)
	assert.True(t, price.Equal(availability.inserted[0].price))
}

func TestCreateProduct(t *testing.T) {
	products := &fakeProducts{}
	svc := newCatalogService(products, &fakeSuppliers{}, &fakeAvailability{})

	id, err := svc.CreateProduct(context.Background(), "Widget")

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, []string{"Widget"}, products.inserted)
}

func TestSearchProductsPassesNeedleThrough(t *testing.T) {
	products := &fakeProducts{}
	svc := newCatalogService(products, &fakeSuppliers{}, &fakeAvailability{})

	_, err := svc.SearchProducts(context.Background(), "100% wool")

	require.NoError(t, err)
	assert.Equal(t, []string{"100% wool"}, products.searched)
}
