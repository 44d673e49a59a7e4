package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Customer is a row of the customers table.
type Customer struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Address string `json:"address" db:"address"`
	City    string `json:"city" db:"city"`
	Country string `json:"country" db:"country"`
}

// CustomerRepository accesses the customers table.
//
// Id parameters are passed through to the store untyped (as text);
// non-numeric input surfaces as a driver error rather than being
// rejected up front.
type CustomerRepository struct {
	store *Store
}

// Insert creates a customer and returns its generated id.
func (r *CustomerRepository) Insert(ctx context.Context, name, address, city, country string) (int64, error) {
	var id int64
	err := r.store.q(ctx).QueryRow(ctx,
		"INSERT INTO customers (name, address, city, country) VALUES ($1, $2, $3, $4) RETURNING id",
		name, address, city, country,
	).Scan(&id)
	return id, err
}

// GetByID looks up a customer by id. It returns (nil, nil) when no
// customer matches, leaving the not-found response to the caller.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*Customer, error) {
	rows, err := r.store.q(ctx).Query(ctx,
		"SELECT id, name, address, city, country FROM customers WHERE id = $1",
		id,
	)
	if err != nil {
		return nil, err
	}

	customer, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Customer])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// Exists reports whether a customer with the given id exists.
func (r *CustomerRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.store.q(ctx).QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)",
		id,
	).Scan(&exists)
	return exists, err
}

// Update replaces every field of the customer row.
func (r *CustomerRepository) Update(ctx context.Context, id, name, address, city, country string) error {
	_, err := r.store.q(ctx).Exec(ctx,
		"UPDATE customers SET name = $1, address = $2, city = $3, country = $4 WHERE id = $5",
		name, address, city, country, id,
	)
	return err
}

// Delete removes the customer row. Deleting zero rows is not an error.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.store.q(ctx).Exec(ctx,
		"DELETE FROM customers WHERE id = $1",
		id,
	)
	return err
}
