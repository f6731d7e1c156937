// Package model holds the resources served by the API and the session
// issued at login.
package model

import "time"

// User is a dashboard member.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       *string   `json:"full_name"`
	DisplayName    *string   `json:"display_name"`
	MembershipType *string   `json:"membership_type"`
	CreatedAt      time.Time `json:"created_at"`
}

// Name returns the best label for the user.
func (u User) Name() string {
	switch {
	case u.DisplayName != nil && *u.DisplayName != "":
		return *u.DisplayName
	case u.FullName != nil && *u.FullName != "":
		return *u.FullName
	default:
		return u.Email
	}
}

// Booking is a reservation for an event on a given day.
type Booking struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	EventName   string     `json:"event_name"`
	BookingDate string     `json:"booking_date"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// BookingDateLayout is the wire format of Booking.BookingDate.
const BookingDateLayout = "2006-01-02"

// Date parses BookingDate.
func (b Booking) Date() (time.Time, error) {
	return time.Parse(BookingDateLayout, b.BookingDate)
}

// Credentials is a stored password hash for a user.
type Credentials struct {
	UserID       string
	Email        string
	PasswordHash string
}

// Session is the authenticated state returned by login.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}
