package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/urbansymbiosis/dashboard-api/internal/server"
)

// OpenAPIHandler serves the API reference UI, which loads
// static/openapi.json.
type OpenAPIHandler struct {
	Handler
	path string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{Handler: NewHandler(s), path: "static/openapi.html"}
}

// ServeOpenAPIUI serves the docs page uncached.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := os.ReadFile(h.path)
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, page)
}
