package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home handles GET /.
func Home(c echo.Context) error {
	return c.Render(http.StatusOK, viewHome, nil)
}
