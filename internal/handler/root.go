package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootMessage is the body of GET /.
const RootMessage = "Urban Symbiosis API is running..."

// Root answers GET / with a plain-text liveness message.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, RootMessage)
}
