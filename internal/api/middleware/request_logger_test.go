package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

func TestRequestLogger_WritesEntry(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(echomiddleware.RequestID())
	e.Use(RequestLogger(zerolog.New(&buf)))
	e.GET("/recipes", func(c echo.Context) error {
		return c.NoContent(http.StatusTeapot)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/recipes", nil))

	out := buf.String()
	for _, want := range []string{`"method":"GET"`, `"uri":"/recipes"`, `"status":418`, `"request_id":"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log entry missing %s: %s", want, out)
		}
	}
}
