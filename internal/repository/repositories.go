// Package repository holds the SQL queries against the hosted store.
//
// Each repository issues exactly one statement per call, under the caller's
// context plus the configured per-query deadline. A missing row is reported
// as ErrNotFound so callers can tell it apart from a failed query.
package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/urbansymbiosis/dashboard-api/internal/server"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = errors.New("record not found")

// DBTX is the subset of *pgxpool.Pool the repositories use.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories groups every repository.
type Repositories struct {
	Users       *UserRepository
	Bookings    *BookingRepository
	Credentials *CredentialRepository
}

// NewRepositories builds the repositories on the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool, s.Config.Database.QueryTimeout)
}

// New builds the repositories on any DBTX, which lets tests pass a
// connection or transaction.
func New(db DBTX, queryTimeout time.Duration) *Repositories {
	q := querier{db: db, timeout: queryTimeout}
	return &Repositories{
		Users:       &UserRepository{q: q},
		Bookings:    &BookingRepository{q: q},
		Credentials: &CredentialRepository{q: q},
	}
}

// querier applies the per-query deadline.
type querier struct {
	db      DBTX
	timeout time.Duration
}

func (q querier) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if q.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, q.timeout)
}

// listRows runs sql and scans every row with scan.
func listRows[T any](ctx context.Context, q querier, sql string, scan func(pgx.Row) (T, error), args ...any) ([]T, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Never nil, so an empty table encodes as [].
	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// getRow runs sql and scans a single row, mapping no rows to ErrNotFound.
func getRow[T any](ctx context.Context, q querier, sql string, scan func(pgx.Row) (T, error), args ...any) (T, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	item, err := scan(q.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		var zero T
		return zero, ErrNotFound
	}
	return item, err
}
