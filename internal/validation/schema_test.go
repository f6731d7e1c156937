package validation

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBody_BookingValid(t *testing.T) {
	body := map[string]any{
		"user_id":      validID,
		"event_name":   "Ski",
		"booking_date": "2025-11-07",
	}
	assert.Empty(t, CheckBody(BookingSchema, body))
}

func TestCheckBody_BookingBatch(t *testing.T) {
	body := map[string]any{
		"user_id":      "123",
		"event_name":   "Sk",
		"booking_date": "tomorrow",
		"status":       42.0,
	}
	assert.Equal(t, []string{
		"user_id must be a valid UUID",
		"event_name must be at least 3 characters",
		"booking_date must be a valid date string",
		"status must be a string",
	}, CheckBody(BookingSchema, body))
}

func TestCheckBody_RequiredForms(t *testing.T) {
	body := map[string]any{
		"user_id":    nil,
		"event_name": "",
	}
	assert.Equal(t, []string{
		"user_id is required",
		"event_name is required",
		"booking_date is required",
	}, CheckBody(BookingSchema, body))
}

func TestCheckBody_OptionalNullSkipped(t *testing.T) {
	body := map[string]any{
		"user_id":      validID,
		"event_name":   "Yoga",
		"booking_date": "2025-11-07T09:00:00Z",
		"status":       nil,
	}
	assert.Empty(t, CheckBody(BookingSchema, body))
}

func TestCheckBody_UserSchema(t *testing.T) {
	body := map[string]any{
		"name":            "A",
		"email":           "not-an-email",
		"membership_type": "premium",
	}
	assert.Equal(t, []string{
		"name must be at least 2 characters",
		"email must be a valid email",
	}, CheckBody(UserSchema, body))

	body["name"] = strings.Repeat("é", 101)
	body["email"] = "ana@example.com"
	assert.Equal(t, []string{"name must be at most 100 characters"}, CheckBody(UserSchema, body))
}

func TestCheckBody_Numbers(t *testing.T) {
	schema := Schema{
		{Name: "age", Rule: Rule{Type: TypeNumber, Required: true, Min: Bound(0), Max: Bound(130)}},
		{Name: "score", Rule: Rule{Type: TypeNumber}},
	}

	assert.Equal(t, []string{"age must be >= 0"}, CheckBody(schema, map[string]any{"age": -1.0}))
	assert.Equal(t, []string{"age must be <= 130"}, CheckBody(schema, map[string]any{"age": 131.0}))
	assert.Equal(t, []string{"age must be a number", "score must be a number"},
		CheckBody(schema, map[string]any{"age": "12", "score": true}))
	assert.Empty(t, CheckBody(schema, map[string]any{"age": 0.0}))
}

func TestCheckBody_UnknownType(t *testing.T) {
	schema := Schema{{Name: "colour", Rule: Rule{Type: "color"}}}
	assert.Equal(t, []string{"Unknown validation type for colour"}, CheckBody(schema, map[string]any{"colour": "red"}))
}

func TestIsValidDate(t *testing.T) {
	for _, s := range []string{"2025-11-07", "2025-11-07T10:30:00Z", "2025-11-07T10:30:00.123+02:00", "2025-11"} {
		assert.True(t, IsValidDate(s), s)
	}
	for _, s := range []string{"", "tomorrow", "2025-13-01", "07/11/2025"} {
		assert.False(t, IsValidDate(s), s)
	}
}

func postJSON(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestValidateBody_RestoresBody(t *testing.T) {
	payload := `{"user_id":"` + validID + `","event_name":"Ski","booking_date":"2025-11-07"}`
	c, _ := postJSON(payload)

	var seen string
	err := ValidateBody(BookingSchema)(func(c echo.Context) error {
		raw, err := io.ReadAll(c.Request().Body)
		seen = string(raw)
		return err
	})(c)

	require.NoError(t, err)
	assert.JSONEq(t, payload, seen)
}

func TestValidateBody_Errors(t *testing.T) {
	c, _ := postJSON(`{"event_name":"Ski"}`)

	called := false
	err := ValidateBody(BookingSchema)(func(echo.Context) error {
		called = true
		return nil
	})(c)

	assert.False(t, called)
	httpErr := asBadRequest(t, err)
	assert.Equal(t, []string{"user_id is required", "booking_date is required"}, httpErr.Response().Errors)
}

func TestValidateBody_MalformedJSON(t *testing.T) {
	for _, body := range []string{`{"user_id":`, `[1,2]`, `null`} {
		c, _ := postJSON(body)
		err := ValidateBody(BookingSchema)(func(echo.Context) error { return nil })(c)

		httpErr := asBadRequest(t, err)
		assert.Equal(t, "Invalid JSON body", httpErr.Response().Error, body)
	}
}

func TestValidateBody_EmptyBodyReportsRequired(t *testing.T) {
	c, _ := postJSON("")
	err := ValidateBody(BookingSchema)(func(echo.Context) error { return nil })(c)

	httpErr := asBadRequest(t, err)
	assert.Len(t, httpErr.Errors, 3)

	out, _ := json.Marshal(httpErr.Response())
	assert.NotContains(t, string(out), `"error"`)
}
