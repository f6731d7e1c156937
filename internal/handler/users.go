package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/urbansymbiosis/dashboard-api/internal/errs"
	"github.com/urbansymbiosis/dashboard-api/internal/model"
	"github.com/urbansymbiosis/dashboard-api/internal/server"
	"github.com/urbansymbiosis/dashboard-api/internal/service"
	"github.com/urbansymbiosis/dashboard-api/internal/validation"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{Handler: NewHandler(s), users: users}
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c echo.Context, _ *EmptyRequest) ([]model.User, error) {
	return h.users.List(c.Request().Context())
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c echo.Context, req *ResourceIDRequest) (model.User, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return model.User{}, err
	}
	return h.users.Get(c.Request().Context(), id)
}

// parseID converts an already validated path id. A failure here means the
// route was registered without validation.ValidateUUID.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError(validation.InvalidUUIDMessage("id"), nil).WithCause(err)
	}
	return id, nil
}
