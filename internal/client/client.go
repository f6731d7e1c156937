// Package client is a typed HTTP client for the dashboard API.
//
// The session is explicit: a Client built with New is anonymous, Login
// returns the resolved session and WithSession returns a copy that sends
// its bearer token on every request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/urbansymbiosis/dashboard-api/internal/model"
)

const defaultTimeout = 15 * time.Second

// APIError is a non-2xx response decoded from the API's error body.
type APIError struct {
	Status  int
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("api: %d: %s", e.Status, strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// BookingAck is the answer to CreateBooking.
type BookingAck struct {
	Message string         `json:"message"`
	Booking map[string]any `json:"booking"`
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	session    *model.Session
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithToken starts the client with a bare access token, e.g. one saved by an
// earlier login. CurrentSession resolves the rest of the session.
func WithToken(token string) Option {
	return func(c *Client) {
		if token != "" {
			c.session = &model.Session{AccessToken: token, TokenType: "bearer"}
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("base url %q must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// WithSession returns a copy of the client that authenticates as s. A nil
// session gives an anonymous copy.
func (c *Client) WithSession(s *model.Session) *Client {
	cp := *c
	cp.session = s
	return &cp
}

// Session returns the session in use, or nil.
func (c *Client) Session() *model.Session {
	return c.session
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var s model.Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CurrentSession asks the API to resolve the client's token.
func (c *Client) CurrentSession(ctx context.Context) (*model.Session, error) {
	if c.session == nil {
		return nil, nil
	}

	var s model.Session
	if err := c.do(ctx, http.MethodGet, "/auth/session", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) User(ctx context.Context, id uuid.UUID) (model.User, error) {
	var user model.User
	err := c.do(ctx, http.MethodGet, "/users/"+id.String(), nil, &user)
	return user, err
}

func (c *Client) Bookings(ctx context.Context) ([]model.Booking, error) {
	bookings := []model.Booking{}
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) Booking(ctx context.Context, id uuid.UUID) (model.Booking, error) {
	var booking model.Booking
	err := c.do(ctx, http.MethodGet, "/bookings/"+id.String(), nil, &booking)
	return booking, err
}

// CreateBooking submits a booking body for validation.
func (c *Client) CreateBooking(ctx context.Context, body map[string]any) (BookingAck, error) {
	var ack BookingAck
	err := c.do(ctx, http.MethodPost, "/bookings", body, &ack)
	return ack, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return errors.Wrapf(err, "build %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil && c.session.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decode %s %s", method, path)
	}
	return nil
}

func decodeError(status int, data []byte) *APIError {
	apiErr := &APIError{Status: status}

	var body struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		apiErr.Message = body.Error
		apiErr.Errors = body.Errors
	}
	if apiErr.Message == "" && len(apiErr.Errors) == 0 {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
