package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipebox/recipe-service/internal/api/session"
)

// SignInPath is where unauthenticated requests to guarded routes are sent.
const SignInPath = "/auth/sign-in"

// RequireSignIn lets the request through only when InjectUser found a session
// user. It is applied per route.
func RequireSignIn() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if session.User(c) == nil {
				return c.Redirect(http.StatusFound, SignInPath)
			}
			return next(c)
		}
	}
}
