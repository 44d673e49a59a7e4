package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// AvailabilityRepository accesses the product_availability table,
// which links a product and a supplier with a unit price.
type AvailabilityRepository struct {
	store *Store
}

// Insert creates an availability row and returns its generated id.
func (r *AvailabilityRepository) Insert(ctx context.Context, productID, supplierID int64, price decimal.Decimal) (int64, error) {
	var id int64
	err := r.store.q(ctx).QueryRow(ctx,
		"INSERT INTO product_availability (prod_id, supp_id, unit_price) VALUES ($1, $2, $3) RETURNING id",
		productID, supplierID, price,
	).Scan(&id)
	return id, err
}
