package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stocklot/commerce-api/internal/errs"
	"github.com/stocklot/commerce-api/internal/repository"
	"github.com/stocklot/commerce-api/internal/server"
)

type productStore interface {
	Insert(ctx context.Context, name string) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListOffers(ctx context.Context) ([]repository.ProductOffer, error)
	SearchByName(ctx context.Context, name string) ([]repository.ProductName, error)
}

type supplierStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type availabilityStore interface {
	Insert(ctx context.Context, productID, supplierID int64, price decimal.Decimal) (int64, error)
}

// CatalogService covers products, suppliers, and availability.
type CatalogService struct {
	products     productStore
	suppliers    supplierStore
	availability availabilityStore
	tx           txRunner
}

// NewCatalogService constructs a CatalogService over the repositories.
func NewCatalogService(s *server.Server, repos *repository.Repositories) *CatalogService {
	return &CatalogService{
		products:     repos.Products,
		suppliers:    repos.Suppliers,
		availability: repos.Availability,
		tx:           repos,
	}
}

// ListProducts returns every priced product/supplier offer.
func (s *CatalogService) ListProducts(ctx context.Context) ([]repository.ProductOffer, error) {
	return s.products.ListOffers(ctx)
}

// SearchProducts returns products whose name contains the given substring.
func (s *CatalogService) SearchProducts(ctx context.Context, name string) ([]repository.ProductName, error) {
	return s.products.SearchByName(ctx, name)
}

// CreateProduct inserts a product and returns its id.
func (s *CatalogService) CreateProduct(ctx context.Context, name string) (int64, error) {
	return s.products.Insert(ctx, name)
}

// CreateAvailability links a product and a supplier with a unit price.
//
// Pre-checks, in order: the product must exist, the supplier must
// exist, and the price must be positive. The checks and the insert
// run in one transaction.
func (s *CatalogService) CreateAvailability(ctx context.Context, productID, supplierID int64, price decimal.Decimal) (int64, error) {
	var id int64
	err := s.tx.RunTx(ctx, func(ctx context.Context) error {
		ok, err := s.products.Exists(ctx, productID)
		if err != nil {
			return err
		}
		if !ok {
			return errs.NewBadRequestError(fmt.Sprintf("Product with ID %d not found", productID))
		}

		ok, err = s.suppliers.Exists(ctx, supplierID)
		if err != nil {
			return err
		}
		if !ok {
			return errs.NewBadRequestError(fmt.Sprintf("Supplier with ID %d not found", supplierID))
		}

		if price.Sign() <= 0 {
			return errs.NewBadRequestError("Price must be a positive integer")
		}

		id, err = s.availability.Insert(ctx, productID, supplierID, price)
		return err
	})
	return id, err
}
