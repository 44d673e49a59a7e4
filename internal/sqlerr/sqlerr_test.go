package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stocklot/commerce-api/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestHandlePassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewBadRequestError("Price must be a positive integer")

	assert.Same(t, original, Handle(original))
}

func TestHandleWrappedHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Customer with ID 9 not found")
	wrapped := fmt.Errorf("running delete: %w", original)

	httpErr := asHTTPError(t, Handle(wrapped))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Customer with ID 9 not found", httpErr.Message)
}

func TestHandlePgErrorSurfacesRawMessage(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:    "23503",
		Message: `insert or update on table "orders" violates foreign key constraint`,
	}

	httpErr := asHTTPError(t, Handle(pgErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, pgErr.Message, httpErr.Message)
}

func TestHandleNoRows(t *testing.T) {
	httpErr := asHTTPError(t, Handle(pgx.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleUnknownError(t *testing.T) {
	httpErr := asHTTPError(t, Handle(errors.New("dial tcp: connection refused")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "dial tcp: connection refused", httpErr.Message)
}
