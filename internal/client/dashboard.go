package client

import (
	"context"
	"sort"
	"time"

	"github.com/urbansymbiosis/dashboard-api/internal/model"
)

// Event and Announcement have no backing resource yet; Dashboard always
// returns them empty.
type Event struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

type Announcement struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Dashboard is the data shown to a signed-in member.
type Dashboard struct {
	Bookings      []model.Booking `json:"bookings"`
	Events        []Event         `json:"events"`
	Announcements []Announcement  `json:"announcements"`
}

func emptyDashboard() Dashboard {
	return Dashboard{
		Bookings:      []model.Booking{},
		Events:        []Event{},
		Announcements: []Announcement{},
	}
}

// Dashboard loads the session user's upcoming bookings, today included,
// ordered by date. Without a session it returns empty data.
func (c *Client) Dashboard(ctx context.Context) (Dashboard, error) {
	return c.dashboardAt(ctx, time.Now())
}

func (c *Client) dashboardAt(ctx context.Context, now time.Time) (Dashboard, error) {
	out := emptyDashboard()
	if c.session == nil {
		return out, nil
	}

	userID := c.session.User.ID
	if userID == "" {
		s, err := c.CurrentSession(ctx)
		if err != nil {
			return out, err
		}
		userID = s.User.ID
	}

	bookings, err := c.Bookings(ctx)
	if err != nil {
		return out, err
	}

	out.Bookings = upcoming(bookings, userID, now)
	return out, nil
}

func upcoming(bookings []model.Booking, userID string, now time.Time) []model.Booking {
	today := now.Format(model.BookingDateLayout)

	result := []model.Booking{}
	for _, b := range bookings {
		if b.UserID != userID {
			continue
		}
		// Layout is zero padded, so string order is date order.
		if _, err := b.Date(); err != nil || b.BookingDate < today {
			continue
		}
		result = append(result, b)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].BookingDate < result[j].BookingDate
	})
	return result
}
