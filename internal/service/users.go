package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/urbansymbiosis/dashboard-api/internal/errs"
	"github.com/urbansymbiosis/dashboard-api/internal/model"
	"github.com/urbansymbiosis/dashboard-api/internal/repository"
)

type UserService struct {
	store UserStore
	slow  time.Duration
}

func NewUserService(store UserStore, slowThreshold time.Duration) *UserService {
	return &UserService{store: store, slow: slowThreshold}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	defer observe(ctx, "users.list", time.Now(), s.slow)

	users, err := s.store.List(ctx)
	if err != nil {
		return nil, storeFailure(ctx, "users.list", err, "Failed to fetch users")
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// Get returns one user or a 404.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (model.User, error) {
	defer observe(ctx, "users.get", time.Now(), s.slow)

	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, errs.NewNotFoundError("User not found").WithCause(err)
		}
		return model.User{}, storeFailure(ctx, "users.get", err, "Failed to fetch user")
	}
	return user, nil
}
