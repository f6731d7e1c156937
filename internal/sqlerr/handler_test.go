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

	"github.com/urbansymbiosis/dashboard-api/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_NoRows(t *testing.T) {
	err := HandleError(fmt.Errorf("select booking: %w", pgx.ErrNoRows))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestHandleError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        "duplicate key value violates unique constraint \"users_email_key\"",
		TableName:      "users",
		ConstraintName: "users_email_key",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
}

func TestHandleError_InvalidTextRepresentation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "22P02", Severity: "ERROR", Message: "invalid input syntax for type uuid: \"123\""}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "uuid")
}

func TestHandleError_UnknownPgErrorIsInternal(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42P01", Severity: "ERROR", Message: "relation \"bookings\" does not exist"}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Response().Error, "relation")
}

func TestHandleError_PassesThroughHTTPError(t *testing.T) {
	in := errs.NewNotFoundError("Booking not found")
	assert.Same(t, in, HandleError(in))
}

func TestErrCodeAndSQLState(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "57014"}
	wrapped := fmt.Errorf("list users: %w", pgErr)

	assert.Equal(t, QueryCanceled, ErrCode(wrapped))
	assert.Equal(t, "57014", SQLState(wrapped))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
	assert.Empty(t, SQLState(errors.New("boom")))
}

func TestGetEntityName(t *testing.T) {
	assert.Equal(t, "User", getEntityName("bookings", "user_id"))
	assert.Equal(t, "Booking", getEntityName("bookings", ""))
	assert.Equal(t, "record", getEntityName("", ""))
}
