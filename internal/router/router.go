// Package router builds the echo instance: global middleware, error
// handling and every route.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urbansymbiosis/dashboard-api/internal/handler"
	"github.com/urbansymbiosis/dashboard-api/internal/middleware"
	"github.com/urbansymbiosis/dashboard-api/internal/server"
	"github.com/urbansymbiosis/dashboard-api/internal/service"
	"github.com/urbansymbiosis/dashboard-api/internal/validation"
)

// NewRouter wires middleware and routes. Global middleware order matters:
// the request id and tracing come first so everything after can log with
// them, and the session is resolved before the request logger is built.
func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	mw := middleware.NewMiddlewares(s, services.Auth.Sessions())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(
		mw.Global.Recover(),
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.Global.CORS(),
		mw.Global.Secure(),
		mw.Auth.Authenticate(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.RateLimit.RateLimit(),
		mw.Global.RequestDeadline(),
	)

	registerSystemRoutes(e, h)
	registerAuthRoutes(e, h, mw)
	registerResourceRoutes(e, h, mw)

	return e
}

func registerAuthRoutes(e *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	auth := e.Group("/auth")
	auth.POST("/login", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK, &handler.LoginRequest{}))
	auth.GET("/session", handler.Handle(h.Auth.Handler, h.Auth.CurrentSession, http.StatusOK, &handler.EmptyRequest{}), mw.Auth.RequireAuth)
}

func registerResourceRoutes(e *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	requireSession := mw.Auth.RequireSessionIfConfigured()

	users := e.Group("/users", requireSession)
	users.GET("", handler.Handle(h.Users.Handler, h.Users.ListUsers, http.StatusOK, &handler.EmptyRequest{}))
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.GetUser, http.StatusOK, &handler.ResourceIDRequest{}),
		validation.ValidateUUID("id"))

	bookings := e.Group("/bookings", requireSession)
	bookings.GET("", handler.Handle(h.Bookings.Handler, h.Bookings.ListBookings, http.StatusOK, &handler.EmptyRequest{}))
	bookings.GET("/:id", handler.Handle(h.Bookings.Handler, h.Bookings.GetBooking, http.StatusOK, &handler.ResourceIDRequest{}),
		validation.ValidateUUID("id"))
	bookings.POST("", handler.Handle(h.Bookings.Handler, h.Bookings.CreateBooking, http.StatusOK, &handler.CreateBookingRequest{}),
		validation.ValidateBody(validation.BookingSchema))
}
