package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/urbansymbiosis/dashboard-api/internal/model"
)

const bookingColumns = `id::text, user_id::text, event_name, to_char(booking_date, 'YYYY-MM-DD'),
	start_time, end_time, status, created_at`

// BookingRepository reads the bookings table.
type BookingRepository struct {
	q querier
}

func scanBooking(row pgx.Row) (model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.UserID, &b.EventName, &b.BookingDate, &b.StartTime, &b.EndTime, &b.Status, &b.CreatedAt)
	return b, err
}

// List returns every booking, unfiltered.
func (r *BookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	bookings, err := listRows(ctx, r.q,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY booking_date, start_time NULLS LAST, id`, scanBooking)
	if err != nil {
		return nil, errors.Wrap(err, "list bookings")
	}
	return bookings, nil
}

// GetByID returns the booking with id, or ErrNotFound.
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Booking, error) {
	booking, err := getRow(ctx, r.q, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, scanBooking, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Booking{}, err
		}
		return model.Booking{}, errors.Wrapf(err, "get booking %s", id)
	}
	return booking, nil
}
