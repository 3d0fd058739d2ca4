// Package session is the only place that reads or writes the HTTP session.
// Handlers and middleware go through Manager so the session backend can be
// swapped (Redis in production, cookie store in tests).
package session

import (
	"fmt"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/recipebox/recipe-service/internal/core/domain"
)

const (
	keyEmail  = "email"
	keyUserID = "user_id"
)

// Manager starts, ends and reads sessions stored under a single cookie name.
type Manager struct {
	name string
}

func NewManager(cookieName string) *Manager {
	return &Manager{name: cookieName}
}

// Middleware installs store on every request; it must run before any Manager call.
func Middleware(store sessions.Store) echo.MiddlewareFunc {
	return echosession.Middleware(store)
}

// Start writes the payload and blocks until the store acknowledges the write.
// The caller may respond (e.g. redirect) only after Start returns nil.
func (m *Manager) Start(c echo.Context, user domain.SessionUser) error {
	// A load error still yields a usable fresh session; only a missing
	// store is fatal here.
	sess, err := echosession.Get(m.name, c)
	if sess == nil {
		return fmt.Errorf("session start: %w", err)
	}

	sess.Values[keyEmail] = user.Email
	sess.Values[keyUserID] = user.UserID
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("session start: %w", err)
	}
	return nil
}

// End destroys the session record and expires the cookie. Calling End without
// a session is a no-op. A failed read does not stop the delete, since the
// store keeps the signed id; a failed delete is returned.
func (m *Manager) End(c echo.Context) error {
	sess, err := echosession.Get(m.name, c)
	if sess == nil {
		return fmt.Errorf("session end: %w", err)
	}

	sess.Options.MaxAge = -1
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("session end: %w", err)
	}
	return nil
}

// Current returns the payload of the request's session, or nil when the client
// is not signed in.
func (m *Manager) Current(c echo.Context) (*domain.SessionUser, error) {
	sess, err := echosession.Get(m.name, c)
	if err != nil {
		return nil, fmt.Errorf("session read: %w", err)
	}

	userID, _ := sess.Values[keyUserID].(string)
	if userID == "" {
		return nil, nil
	}
	email, _ := sess.Values[keyEmail].(string)
	return &domain.SessionUser{Email: email, UserID: userID}, nil
}

// ContextKey is the echo.Context key holding the current *domain.SessionUser.
const ContextKey = "session_user"

// SetUser records user (possibly nil) on the echo context, where handlers and
// the renderer read it.
func SetUser(c echo.Context, user *domain.SessionUser) {
	c.Set(ContextKey, user)
}

// User returns the session user injected for this request, or nil.
func User(c echo.Context) *domain.SessionUser {
	user, _ := c.Get(ContextKey).(*domain.SessionUser)
	return user
}
