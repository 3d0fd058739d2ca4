package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/recipebox/recipe-service/internal/api/session"
	"github.com/recipebox/recipe-service/internal/core/domain"
)

// SessionReader reads the session payload of a request.
type SessionReader interface {
	Current(c echo.Context) (*domain.SessionUser, error)
}

// InjectUser reads the session once per request and records the user (or nil)
// for guards, handlers and views. It must be registered before any route.
func InjectUser(sessions SessionReader, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := sessions.Current(c)
			if err != nil {
				// Treat an unreachable session store as signed out.
				log.Warn().Err(err).Str("uri", c.Request().RequestURI).Msg("session unavailable")
				user = nil
			}
			session.SetUser(c, user)
			return next(c)
		}
	}
}
