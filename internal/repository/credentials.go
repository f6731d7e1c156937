package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/urbansymbiosis/dashboard-api/internal/model"
)

// CredentialRepository reads password hashes kept by the auth subsystem.
type CredentialRepository struct {
	q querier
}

// GetByEmail returns the credentials of the user with email, matched
// case-insensitively, or ErrNotFound.
func (r *CredentialRepository) GetByEmail(ctx context.Context, email string) (model.Credentials, error) {
	const sql = `SELECT u.id::text, u.email, c.password_hash
		FROM user_credentials c
		JOIN users u ON u.id = c.user_id
		WHERE lower(u.email) = $1`

	creds, err := getRow(ctx, r.q, sql, func(row pgx.Row) (model.Credentials, error) {
		var c model.Credentials
		err := row.Scan(&c.UserID, &c.Email, &c.PasswordHash)
		return c, err
	}, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Credentials{}, err
		}
		return model.Credentials{}, errors.Wrap(err, "get credentials")
	}
	return creds, nil
}
