package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipebox/recipe-service/internal/api/session"
	"github.com/recipebox/recipe-service/internal/core/domain"
)

// RequireOwner enforces that the signed-in user is the one named by the path
// parameter param. Anonymous requests are redirected like RequireSignIn.
func RequireOwner(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := session.User(c)
			if user == nil {
				return c.Redirect(http.StatusFound, SignInPath)
			}
			if c.Param(param) != user.UserID {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
