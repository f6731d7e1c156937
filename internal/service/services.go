// Package service holds the business rules between handlers and the store.
//
// Services call exactly one repository method per operation and translate
// the outcome into the errs taxonomy: a missing row becomes a 404 with a
// resource-specific message, any other store failure a 500 whose cause is
// logged but never shown to the client.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/urbansymbiosis/dashboard-api/internal/errs"
	"github.com/urbansymbiosis/dashboard-api/internal/lib/session"
	"github.com/urbansymbiosis/dashboard-api/internal/model"
	"github.com/urbansymbiosis/dashboard-api/internal/repository"
	"github.com/urbansymbiosis/dashboard-api/internal/server"
	"github.com/urbansymbiosis/dashboard-api/internal/sqlerr"
)

// UserStore reads users.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

// BookingStore reads bookings.
type BookingStore interface {
	List(ctx context.Context) ([]model.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Booking, error)
}

// CredentialStore reads password hashes.
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (model.Credentials, error)
}

// Services groups every service.
type Services struct {
	Users    *UserService
	Bookings *BookingService
	Auth     *AuthService
}

// NewService wires the services onto the repositories.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	if repos == nil {
		return nil, errors.New("repositories are required")
	}

	var slow time.Duration
	if s.Config.Observability != nil {
		slow = s.Config.Observability.Logging.SlowQueryThreshold
	}
	sessions := session.NewManager(s.Config.Auth.SecretKey, s.Config.Auth.TokenTTL)

	return &Services{
		Users:    NewUserService(repos.Users, slow),
		Bookings: NewBookingService(repos.Bookings, slow),
		Auth:     NewAuthService(repos.Credentials, repos.Users, sessions),
	}, nil
}

// storeFailure logs a failed store call and returns the 500 the client sees.
func storeFailure(ctx context.Context, operation string, err error, message string) error {
	zerolog.Ctx(ctx).Error().
		Err(err).
		Str("operation", operation).
		Str("sql_state", sqlerr.SQLState(err)).
		Str("sql_code", string(sqlerr.ErrCode(err))).
		Msg("store call failed")

	return errs.NewInternalServerError().WithMessage(message).WithCause(err)
}

// observe warns about store calls slower than threshold.
func observe(ctx context.Context, operation string, start time.Time, threshold time.Duration) {
	if threshold <= 0 {
		return
	}
	if elapsed := time.Since(start); elapsed > threshold {
		zerolog.Ctx(ctx).Warn().
			Str("operation", operation).
			Dur("duration", elapsed).
			Dur("threshold", threshold).
			Msg("slow store call")
	}
}
