package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/urbansymbiosis/dashboard-api/internal/errs"
	"github.com/urbansymbiosis/dashboard-api/internal/lib/session"
	"github.com/urbansymbiosis/dashboard-api/internal/server"
)

const (
	SessionClaimsKey = "session_claims"
	SessionTokenKey  = "session_token"
)

// AuthMiddleware resolves the bearer session of a request.
type AuthMiddleware struct {
	server   *server.Server
	sessions *session.Manager
}

func NewAuthMiddleware(s *server.Server, sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{server: s, sessions: sessions}
}

// Authenticate parses the Authorization header when present. A missing or
// invalid token leaves the request anonymous; RequireAuth decides whether
// that is acceptable.
func (auth *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := session.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return next(c)
			}

			claims, err := auth.sessions.Parse(token)
			if err != nil {
				auth.server.Logger.Debug().
					Str("request_id", GetRequestID(c)).
					Msg("ignoring invalid session token")
				return next(c)
			}

			c.Set(UserIDKey, claims.Subject)
			c.Set(UserRoleKey, claims.Role)
			c.Set(SessionClaimsKey, claims)
			c.Set(SessionTokenKey, token)

			return next(c)
		}
	}
}

// RequireAuth answers 401 unless Authenticate resolved a session.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if GetSessionClaims(c) == nil {
			GetLogger(c).Info().Msg("request without a valid session rejected")
			return errs.NewUnauthorizedError("Unauthorized")
		}
		return next(c)
	}
}

// RequireSessionIfConfigured applies RequireAuth only when
// auth.require_session is set.
func (auth *AuthMiddleware) RequireSessionIfConfigured() echo.MiddlewareFunc {
	if !auth.server.Config.Auth.RequireSession {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return auth.RequireAuth
}

func GetSessionClaims(c echo.Context) *session.Claims {
	if claims, ok := c.Get(SessionClaimsKey).(*session.Claims); ok {
		return claims
	}
	return nil
}

func GetSessionToken(c echo.Context) string {
	if token, ok := c.Get(SessionTokenKey).(string); ok {
		return token
	}
	return ""
}
