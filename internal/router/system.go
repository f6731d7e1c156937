package router

import (
	"github.com/labstack/echo/v4"

	"github.com/urbansymbiosis/dashboard-api/internal/handler"
)

func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/", handler.Root)
	e.GET("/status", h.Health.CheckHealth)
	e.Static("/static", "static")
	e.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
