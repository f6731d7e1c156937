// Package handler is the HTTP layer. Handlers bind and validate input,
// call one service method and return the result for the shared pipeline
// in base.go to write.
package handler

import (
	"github.com/urbansymbiosis/dashboard-api/internal/server"
	"github.com/urbansymbiosis/dashboard-api/internal/service"
)

// Handlers groups every HTTP handler.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Users    *UserHandler
	Bookings *BookingHandler
	Auth     *AuthHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Users:    NewUserHandler(s, services.Users),
		Bookings: NewBookingHandler(s, services.Bookings),
		Auth:     NewAuthHandler(s, services.Auth),
	}
}
