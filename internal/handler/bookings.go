package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/urbansymbiosis/dashboard-api/internal/model"
	"github.com/urbansymbiosis/dashboard-api/internal/server"
	"github.com/urbansymbiosis/dashboard-api/internal/service"
)

type BookingHandler struct {
	Handler
	bookings *service.BookingService
}

func NewBookingHandler(s *server.Server, bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{Handler: NewHandler(s), bookings: bookings}
}

// ListBookings handles GET /bookings.
func (h *BookingHandler) ListBookings(c echo.Context, _ *EmptyRequest) ([]model.Booking, error) {
	return h.bookings.List(c.Request().Context())
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c echo.Context, req *ResourceIDRequest) (model.Booking, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return model.Booking{}, err
	}
	return h.bookings.Get(c.Request().Context(), id)
}

// CreateBooking handles POST /bookings. It acknowledges the request and
// stores nothing.
func (h *BookingHandler) CreateBooking(c echo.Context, req *CreateBookingRequest) (service.CreateBookingResponse, error) {
	return h.bookings.Create(c.Request().Context(), *req), nil
}
