package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/urbansymbiosis/dashboard-api/internal/model"
)

const userColumns = `id::text, email, full_name, display_name, membership_type, created_at`

// UserRepository reads the users table.
type UserRepository struct {
	q querier
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.DisplayName, &u.MembershipType, &u.CreatedAt)
	return u, err
}

// List returns every user, unfiltered.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	users, err := listRows(ctx, r.q, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`, scanUser)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

// GetByID returns the user with id, or ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := getRow(ctx, r.q, `SELECT `+userColumns+` FROM users WHERE id = $1`, scanUser, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, errors.Wrapf(err, "get user %s", id)
	}
	return user, nil
}
