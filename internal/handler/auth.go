package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/urbansymbiosis/dashboard-api/internal/errs"
	"github.com/urbansymbiosis/dashboard-api/internal/middleware"
	"github.com/urbansymbiosis/dashboard-api/internal/model"
	"github.com/urbansymbiosis/dashboard-api/internal/server"
	"github.com/urbansymbiosis/dashboard-api/internal/service"
)

type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Handler: NewHandler(s), auth: auth}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (model.Session, error) {
	return h.auth.Login(c.Request().Context(), req.Email, req.Password)
}

// CurrentSession handles GET /auth/session. The route requires a session.
func (h *AuthHandler) CurrentSession(c echo.Context, _ *EmptyRequest) (model.Session, error) {
	claims := middleware.GetSessionClaims(c)
	if claims == nil {
		return model.Session{}, errs.NewUnauthorizedError("Unauthorized")
	}
	return h.auth.Session(c.Request().Context(), middleware.GetSessionToken(c), claims)
}
