package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestIsFresh(t *testing.T) {
	template := &ResourceIDRequest{ID: "stale"}

	req := newRequest(template)
	require.NotSame(t, template, req)
	assert.Empty(t, req.ID)
}

func TestHandle_BindsPathParam(t *testing.T) {
	e := echo.New()
	template := &ResourceIDRequest{}

	var seen []string
	h := Handle(Handler{}, func(c echo.Context, req *ResourceIDRequest) (map[string]string, error) {
		seen = append(seen, req.ID)
		return map[string]string{"id": req.ID}, nil
	}, http.StatusOK, template)

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/things/"+id, nil), rec)
		c.SetPath("/things/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)

		require.NoError(t, h(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":"`+id+`"}`, rec.Body.String())
	}

	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Empty(t, template.ID)
}

func TestHandle_BindsMapBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{"event_name":"Ski"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got CreateBookingRequest
	h := Handle(Handler{}, func(c echo.Context, req *CreateBookingRequest) (string, error) {
		got = *req
		return "ok", nil
	}, http.StatusOK, &CreateBookingRequest{})

	require.NoError(t, h(c))
	assert.Equal(t, "Ski", got["event_name"])
}

func TestRoot(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, Root(c))
	assert.Equal(t, RootMessage, rec.Body.String())
}
