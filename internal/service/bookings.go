package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/urbansymbiosis/dashboard-api/internal/errs"
	"github.com/urbansymbiosis/dashboard-api/internal/model"
	"github.com/urbansymbiosis/dashboard-api/internal/repository"
	"github.com/urbansymbiosis/dashboard-api/internal/validation"
)

// BookingAccepted is the message returned for a validated booking.
const BookingAccepted = "Booking validated successfully"

// CreateBookingResponse acknowledges a booking request.
type CreateBookingResponse struct {
	Message string         `json:"message"`
	Booking map[string]any `json:"booking"`
}

type BookingService struct {
	store BookingStore
	slow  time.Duration
}

func NewBookingService(store BookingStore, slowThreshold time.Duration) *BookingService {
	return &BookingService{store: store, slow: slowThreshold}
}

// List returns all bookings.
func (s *BookingService) List(ctx context.Context) ([]model.Booking, error) {
	defer observe(ctx, "bookings.list", time.Now(), s.slow)

	bookings, err := s.store.List(ctx)
	if err != nil {
		return nil, storeFailure(ctx, "bookings.list", err, "Failed to fetch bookings")
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return bookings, nil
}

// Get returns one booking or a 404.
func (s *BookingService) Get(ctx context.Context, id uuid.UUID) (model.Booking, error) {
	defer observe(ctx, "bookings.get", time.Now(), s.slow)

	booking, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Booking{}, errs.NewNotFoundError("Booking not found").WithCause(err)
		}
		return model.Booking{}, storeFailure(ctx, "bookings.get", err, "Failed to fetch booking")
	}
	return booking, nil
}

// Create acknowledges a booking body that already passed BookingSchema.
// Nothing is written to the store.
func (s *BookingService) Create(ctx context.Context, body map[string]any) CreateBookingResponse {
	booking := validation.SanitizeBody(validation.BookingSchema, body)

	zerolog.Ctx(ctx).Info().
		Interface("user_id", booking["user_id"]).
		Interface("booking_date", booking["booking_date"]).
		Msg("booking request acknowledged")

	return CreateBookingResponse{Message: BookingAccepted, Booking: booking}
}
