package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// OrderLine is one row of a customer's order listing: an order item
// joined with its order, product, supplier, and unit price.
type OrderLine struct {
	OrderReference string          `json:"orderReference" db:"order_reference"`
	OrderDate      time.Time       `json:"orderDate" db:"order_date"`
	ProductName    string          `json:"productName" db:"product_name"`
	UnitPrice      decimal.Decimal `json:"unitPrice" db:"unit_price"`
	SupplierName   string          `json:"supplierName" db:"supplier_name"`
	Quantity       int             `json:"quantity" db:"quantity"`
}

// OrderRepository accesses the orders and order_items tables.
type OrderRepository struct {
	store *Store
}

// Insert creates an order for a customer and returns its generated id.
// The order date is passed through as text and cast by the store.
func (r *OrderRepository) Insert(ctx context.Context, customerID, orderDate, orderReference string) (int64, error) {
	var id int64
	err := r.store.q(ctx).QueryRow(ctx,
		"INSERT INTO orders (customer_id, order_date, order_reference) VALUES ($1, $2, $3) RETURNING id",
		customerID, orderDate, orderReference,
	).Scan(&id)
	return id, err
}

// DeleteItems removes every order item belonging to the order.
func (r *OrderRepository) DeleteItems(ctx context.Context, orderID string) error {
	_, err := r.store.q(ctx).Exec(ctx,
		"DELETE FROM order_items WHERE order_id = $1",
		orderID,
	)
	return err
}

// Delete removes the order row. Deleting zero rows is not an error.
func (r *OrderRepository) Delete(ctx context.Context, orderID string) error {
	_, err := r.store.q(ctx).Exec(ctx,
		"DELETE FROM orders WHERE id = $1",
		orderID,
	)
	return err
}

// AnyForCustomer reports whether the customer has at least one order.
func (r *OrderRepository) AnyForCustomer(ctx context.Context, customerID string) (bool, error) {
	var exists bool
	err := r.store.q(ctx).QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM orders WHERE customer_id = $1)",
		customerID,
	).Scan(&exists)
	return exists, err
}

// ListForCustomer returns one row per (order, order item) pair for
// the customer, joined with product, supplier, and price data.
func (r *OrderRepository) ListForCustomer(ctx context.Context, customerID string) ([]OrderLine, error) {
	rows, err := r.store.q(ctx).Query(ctx, `
		SELECT o.order_reference, o.order_date, p.product_name, pa.unit_price, s.supplier_name, oi.quantity
		FROM orders AS o
		INNER JOIN order_items AS oi ON o.id = oi.order_id
		INNER JOIN product_availability AS pa ON oi.prod_id = pa.prod_id AND oi.supp_id = pa.supp_id
		INNER JOIN products AS p ON oi.prod_id = p.id
		INNER JOIN suppliers AS s ON oi.supp_id = s.id
		WHERE o.customer_id = $1`,
		customerID,
	)
	if err != nil {
		return nil, err
	}

	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[OrderLine])
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []OrderLine{}
	}
	return lines, nil
}
