package repository

import "context"

// SupplierRepository accesses the suppliers table.
//
// Suppliers are reference data: the API never creates or mutates
// them, it only checks their presence before writing availability.
type SupplierRepository struct {
	store *Store
}

// Exists reports whether a supplier with the given id exists.
func (r *SupplierRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.store.q(ctx).QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM suppliers WHERE id = $1)",
		id,
	).Scan(&exists)
	return exists, err
}
