// Package sqlerr specifically handles database driver errors.
//
// It converts failures coming out of pgx into the HTTPError shape
// the rest of the application speaks. Store failures are surfaced
// with their raw driver message and status 500; the only special
// case is "no rows", which maps to a 404.
package sqlerr

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stocklot/commerce-api/internal/errs"
)

// Handle converts a low-level database error into an application-level error.
//
//   - *errs.HTTPError values pass through untouched, so pre-check errors
//     produced by the service layer keep their status and message.
//   - *pgconn.PgError (Postgres server errors: constraint violations,
//     cast failures, connectivity) surface the server's message as a 500.
//   - pgx.ErrNoRows / sql.ErrNoRows map to a generic 404.
//   - Anything else becomes a 500 carrying err.Error().
func Handle(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return errs.NewInternalServerError(pgErr.Message)
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found")
	}

	return errs.NewInternalServerError(err.Error())
}
