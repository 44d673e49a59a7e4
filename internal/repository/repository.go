// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Multi-statement operations run inside a single transaction: the
// Store carries an optional pgx.Tx through the context, and every
// repository method resolves its querier from the context, so the
// same method works against the pool or inside RunTx.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stocklot/commerce-api/internal/server"
)

// Querier is the subset of pgx operations repositories need.
// It is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txContextKey struct{}

// Store owns the connection pool and the transaction plumbing
// shared by all repositories.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps a connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// q resolves the querier for ctx: the context-carried transaction
// when one is active, the pool otherwise.
func (s *Store) q(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txContextKey{}).(pgx.Tx); ok {
		return tx
	}
	return s.pool
}

// RunTx executes fn inside a single database transaction. The
// transaction is committed when fn returns nil and rolled back
// otherwise. Repository calls made with the context passed to fn
// join the transaction.
func (s *Store) RunTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// Repositories is a container for all repository instances.
type Repositories struct {
	store *Store

	Products     *ProductRepository
	Suppliers    *SupplierRepository
	Availability *AvailabilityRepository
	Customers    *CustomerRepository
	Orders       *OrderRepository
}

// NewRepositories constructs the repository container on top of the
// server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	store := NewStore(s.DB.Pool)

	return &Repositories{
		store:        store,
		Products:     &ProductRepository{store: store},
		Suppliers:    &SupplierRepository{store: store},
		Availability: &AvailabilityRepository{store: store},
		Customers:    &CustomerRepository{store: store},
		Orders:       &OrderRepository{store: store},
	}
}

// RunTx exposes the store's transaction runner to the service layer.
func (r *Repositories) RunTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.store.RunTx(ctx, fn)
}
