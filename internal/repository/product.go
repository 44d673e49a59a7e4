package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ProductOffer is one row of the product listing: a product offered
// by a supplier at a unit price.
type ProductOffer struct {
	Name         string          `json:"name" db:"product_name"`
	Price        decimal.Decimal `json:"price" db:"unit_price"`
	SupplierName string          `json:"supplierName" db:"supplier_name"`
}

// ProductName is one row of a product name search.
type ProductName struct {
	Name string `json:"name" db:"product_name"`
}

// ProductRepository accesses the products table.
type ProductRepository struct {
	store *Store
}

// Insert creates a product and returns its generated id.
func (r *ProductRepository) Insert(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.store.q(ctx).QueryRow(ctx,
		"INSERT INTO products (product_name) VALUES ($1) RETURNING id",
		name,
	).Scan(&id)
	return id, err
}

// Exists reports whether a product with the given id exists.
func (r *ProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.store.q(ctx).QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)",
		id,
	).Scan(&exists)
	return exists, err
}

// ListOffers returns every product/supplier pairing with its unit price.
func (r *ProductRepository) ListOffers(ctx context.Context) ([]ProductOffer, error) {
	rows, err := r.store.q(ctx).Query(ctx, `
		SELECT p.product_name, pa.unit_price, s.supplier_name
		FROM products AS p
		INNER JOIN product_availability AS pa ON p.id = pa.prod_id
		INNER JOIN suppliers AS s ON pa.supp_id = s.id`)
	if err != nil {
		return nil, err
	}

	offers, err := pgx.CollectRows(rows, pgx.RowToStructByName[ProductOffer])
	if err != nil {
		return nil, err
	}
	if offers == nil {
		offers = []ProductOffer{}
	}
	return offers, nil
}

// likeEscaper neutralizes LIKE pattern characters so user input is
// matched as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchByName returns products whose name contains the given
// substring (case-sensitive). The needle is escaped, not treated
// as a pattern.
func (r *ProductRepository) SearchByName(ctx context.Context, name string) ([]ProductName, error) {
	rows, err := r.store.q(ctx).Query(ctx,
		`SELECT product_name FROM products WHERE product_name LIKE '%' || $1 || '%' ESCAPE '\'`,
		likeEscaper.Replace(name),
	)
	if err != nil {
		return nil, err
	}

	names, err := pgx.CollectRows(rows, pgx.RowToStructByName[ProductName])
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []ProductName{}
	}
	return names, nil
}
