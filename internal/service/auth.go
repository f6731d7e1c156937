package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/urbansymbiosis/dashboard-api/internal/errs"
	"github.com/urbansymbiosis/dashboard-api/internal/lib/session"
	"github.com/urbansymbiosis/dashboard-api/internal/model"
	"github.com/urbansymbiosis/dashboard-api/internal/repository"
)

// InvalidCredentials is the only message a failed login ever gets, so the
// response does not reveal whether the email exists.
const InvalidCredentials = "Invalid email or password"

// AuthService logs users in against stored credentials and describes
// existing sessions.
type AuthService struct {
	credentials CredentialStore
	users       UserStore
	sessions    *session.Manager
}

func NewAuthService(credentials CredentialStore, users UserStore, sessions *session.Manager) *AuthService {
	return &AuthService{credentials: credentials, users: users, sessions: sessions}
}

// Sessions exposes the token manager to the auth middleware.
func (s *AuthService) Sessions() *session.Manager {
	return s.sessions
}

// Login checks email and password and issues a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.Session, error) {
	creds, err := s.credentials.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Session{}, errs.NewUnauthorizedError(InvalidCredentials)
		}
		return model.Session{}, storeFailure(ctx, "auth.login", err, "Failed to sign in")
	}

	if !session.CheckPassword(creds.PasswordHash, password) {
		zerolog.Ctx(ctx).Info().Str("user_id", creds.UserID).Msg("login rejected")
		return model.Session{}, errs.NewUnauthorizedError(InvalidCredentials)
	}

	user, err := s.lookupUser(ctx, creds.UserID)
	if err != nil {
		return model.Session{}, err
	}

	token, expiresAt, err := s.sessions.Issue(user.ID, user.Email)
	if err != nil {
		return model.Session{}, errs.NewInternalServerError().WithCause(err)
	}

	return model.Session{
		AccessToken: token,
		TokenType:   session.TokenType,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// Session describes the session behind an already verified token.
func (s *AuthService) Session(ctx context.Context, token string, claims *session.Claims) (model.Session, error) {
	user, err := s.lookupUser(ctx, claims.Subject)
	if err != nil {
		return model.Session{}, err
	}

	out := model.Session{
		AccessToken: token,
		TokenType:   session.TokenType,
		User:        user,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func (s *AuthService) lookupUser(ctx context.Context, rawID string) (model.User, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return model.User{}, errs.NewUnauthorizedError("Invalid session")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, errs.NewUnauthorizedError("Invalid session").WithCause(err)
		}
		return model.User{}, storeFailure(ctx, "auth.user", err, "Failed to fetch user")
	}
	return user, nil
}
