package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "Robert DROP TABLE users", SanitizeInput(`Robert'; DROP TABLE users;--`))
	assert.Equal(t, "say hi", SanitizeInput(`say "hi"`))
	assert.Equal(t, 42.0, SanitizeInput(42.0))
	assert.Nil(t, SanitizeInput(nil))
	assert.Equal(t, true, SanitizeInput(true))
}

func TestSanitizeBody(t *testing.T) {
	body := map[string]any{
		"user_id":      validID,
		"event_name":   "Ski; trip",
		"booking_date": "2025-11-07",
		"status":       "pre-booked",
		"extra":        "ignored",
	}

	assert.Equal(t, map[string]any{
		"user_id":      validID,
		"event_name":   "Ski trip",
		"booking_date": "2025-11-07",
		"status":       "prebooked",
	}, SanitizeBody(BookingSchema, body))
}
