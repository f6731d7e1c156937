package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbansymbiosis/dashboard-api/internal/config"
	"github.com/urbansymbiosis/dashboard-api/internal/handler"
	"github.com/urbansymbiosis/dashboard-api/internal/lib/session"
	"github.com/urbansymbiosis/dashboard-api/internal/model"
	"github.com/urbansymbiosis/dashboard-api/internal/repository"
	"github.com/urbansymbiosis/dashboard-api/internal/server"
	"github.com/urbansymbiosis/dashboard-api/internal/service"
)

const (
	testSecret = "test-secret-0123456789"
	userID     = "5b1f8a3e-1c2d-4e5f-8a9b-0c1d2e3f4a5b"
	bookingID  = "9c8b7a6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"
	password   = "correct horse battery"
)

type stubUsers struct {
	users []model.User
	err   error
	calls int
}

func (s *stubUsers) List(context.Context) ([]model.User, error) {
	s.calls++
	return s.users, s.err
}

func (s *stubUsers) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.calls++
	if s.err != nil {
		return model.User{}, s.err
	}
	for _, u := range s.users {
		if u.ID == id.String() {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

type stubBookings struct {
	bookings []model.Booking
	err      error
	calls    int
}

func (s *stubBookings) List(context.Context) ([]model.Booking, error) {
	s.calls++
	return s.bookings, s.err
}

func (s *stubBookings) GetByID(_ context.Context, id uuid.UUID) (model.Booking, error) {
	s.calls++
	if s.err != nil {
		return model.Booking{}, s.err
	}
	for _, b := range s.bookings {
		if b.ID == id.String() {
			return b, nil
		}
	}
	return model.Booking{}, repository.ErrNotFound
}

type stubCredentials struct {
	creds model.Credentials
}

func (s *stubCredentials) GetByEmail(_ context.Context, email string) (model.Credentials, error) {
	if email != s.creds.Email {
		return model.Credentials{}, repository.ErrNotFound
	}
	return s.creds, nil
}

type testApp struct {
	echo     *echo.Echo
	users    *stubUsers
	bookings *stubBookings
	sessions *session.Manager
	logs     *bytes.Buffer
}

func newTestApp(t *testing.T, mutate ...func(*config.Config)) *testApp {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := zerolog.New(logs).Level(zerolog.DebugLevel)
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "5000",
			RequestTimeout:     5 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Auth:          config.AuthConfig{SecretKey: testSecret, TokenTTL: time.Hour},
		Observability: config.DefaultObservabilityConfig(),
	}
	for _, m := range mutate {
		m(cfg)
	}
	s := &server.Server{Config: cfg, Logger: &logger}

	hash, err := session.HashPassword(password)
	require.NoError(t, err)

	users := &stubUsers{users: []model.User{{ID: userID, Email: "ana@example.com"}}}
	bookings := &stubBookings{bookings: []model.Booking{{
		ID: bookingID, UserID: userID, EventName: "Yoga", BookingDate: "2025-11-07", Status: "confirmed",
	}}}
	creds := &stubCredentials{creds: model.Credentials{UserID: userID, Email: "ana@example.com", PasswordHash: hash}}
	sessions := session.NewManager(testSecret, time.Hour)

	services := &service.Services{
		Users:    service.NewUserService(users, 0),
		Bookings: service.NewBookingService(bookings, 0),
		Auth:     service.NewAuthService(creds, users, sessions),
	}

	return &testApp{
		echo:     NewRouter(s, handler.NewHandlers(s, services), services),
		users:    users,
		bookings: bookings,
		sessions: sessions,
		logs:     logs,
	}
}

func (a *testApp) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func TestRoot(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Urban Symbiosis API is running...", rec.Body.String())
}

func TestListUsers(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var users []model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 1)
	assert.Equal(t, userID, users[0].ID)
}

func TestListBookings_EmptyIsArray(t *testing.T) {
	app := newTestApp(t)
	app.bookings.bookings = nil

	rec := app.do(http.MethodGet, "/bookings", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetUser_InvalidIDNeverReachesStore(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/users/123", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid ID format. Please provide a valid UUID."}`, rec.Body.String())
	assert.Zero(t, app.users.calls)
}

func TestGetBooking(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/bookings/"+bookingID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var booking model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	assert.Equal(t, "Yoga", booking.EventName)
	assert.Equal(t, "2025-11-07", booking.BookingDate)
}

func TestGetBooking_NotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/bookings/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Booking not found"}`, rec.Body.String())
}

func TestGetUser_NotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/users/"+strings.ToUpper(uuid.NewString()), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestStoreFailureDoesNotLeak(t *testing.T) {
	app := newTestApp(t)
	app.users.err = errors.New(`pq: relation "users" does not exist`)

	rec := app.do(http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch users"}`, rec.Body.String())
	assert.Contains(t, app.logs.String(), `relation \"users\" does not exist`)

	rec = app.do(http.MethodGet, "/users/"+userID, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch user"}`, rec.Body.String())
}

func TestCreateBooking_Acknowledged(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/bookings",
		`{"user_id":"`+userID+`","event_name":"Ski","booking_date":"2025-11-07"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body service.CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, service.BookingAccepted, body.Message)
	assert.Equal(t, "Ski", body.Booking["event_name"])
	assert.Equal(t, userID, body.Booking["user_id"])
	assert.Zero(t, app.bookings.calls)
}

func TestCreateBooking_ValidationErrors(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/bookings", `{"user_id":"123","event_name":"Sk"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[
		"user_id must be a valid UUID",
		"event_name must be at least 3 characters",
		"booking_date is required"
	]}`, rec.Body.String())
}

func TestCreateBooking_MalformedJSON(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/bookings", `{"user_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON body"}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/events", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, rec.Body.String())
}

func TestLoginAndSession(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var s model.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, session.TokenType, s.TokenType)
	assert.NotEmpty(t, s.AccessToken)

	rec = app.do(http.MethodGet, "/auth/session", "", echo.HeaderAuthorization, "Bearer "+s.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var current model.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &current))
	assert.Equal(t, userID, current.User.ID)
}

func TestLogin_Rejected(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"not the password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())

	rec = app.do(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"password must be at least 8 characters"}`, rec.Body.String())
}

func TestSession_RequiresToken(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/auth/session", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSessionConfigured(t *testing.T) {
	app := newTestApp(t, func(cfg *config.Config) { cfg.Auth.RequireSession = true })

	rec := app.do(http.MethodGet, "/bookings", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, app.bookings.calls)

	token, _, err := app.sessions.Issue(userID, "ana@example.com")
	require.NoError(t, err)
	rec = app.do(http.MethodGet, "/bookings", "", echo.HeaderAuthorization, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatus_WithoutDatabase(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body handler.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, "unhealthy", body.Checks["database"].Status)
}

func TestRequestIDHeader(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/", "", "X-Request-ID", "trace-me")
	assert.Equal(t, "trace-me", rec.Header().Get("X-Request-ID"))
}
