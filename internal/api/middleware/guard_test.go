package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/recipebox/recipe-service/internal/api/session"
	"github.com/recipebox/recipe-service/internal/core/domain"
)

type stubSessions struct {
	user *domain.SessionUser
	err  error
}

func (s stubSessions) Current(echo.Context) (*domain.SessionUser, error) {
	return s.user, s.err
}

// serve runs req through InjectUser + RequireSignIn on a real router, the way
// the application wires them.
func serve(sessions SessionReader, reached *bool) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(InjectUser(sessions, zerolog.Nop()))
	e.GET("/users/:id", func(c echo.Context) error {
		*reached = true
		return c.String(http.StatusOK, "profile of "+session.User(c).Email)
	}, RequireSignIn())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/abc", nil))
	return rec
}

func TestRequireSignIn_AllowsSessionUser(t *testing.T) {
	reached := false
	rec := serve(stubSessions{user: &domain.SessionUser{Email: "a@x.com", UserID: "abc"}}, &reached)

	if !reached {
		t.Fatalf("handler not reached")
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "profile of a@x.com" {
		t.Fatalf("unexpected response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestRequireSignIn_RedirectsWithoutSession(t *testing.T) {
	reached := false
	rec := serve(stubSessions{}, &reached)

	if reached {
		t.Fatalf("guarded handler must not run without a session")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != SignInPath {
		t.Fatalf("expected redirect to %s, got %q", SignInPath, loc)
	}
}

func TestInjectUser_StoreFailureIsAnonymous(t *testing.T) {
	reached := false
	rec := serve(stubSessions{err: errors.New("redis down")}, &reached)

	if reached {
		t.Fatalf("guarded handler must not run when the session cannot be read")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestInjectUser_SetsNilMarker(t *testing.T) {
	e := echo.New()
	e.Use(InjectUser(stubSessions{}, zerolog.Nop()))

	var seen bool
	e.GET("/", func(c echo.Context) error {
		_, seen = c.Get(session.ContextKey).(*domain.SessionUser)
		return c.NoContent(http.StatusOK)
	})
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !seen {
		t.Fatalf("expected an explicit (nil) session user on every request")
	}
}
