package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/recipebox/recipe-service/internal/core/domain"
	"github.com/recipebox/recipe-service/internal/core/ports"
)

type stubUserService struct {
	profileFn func(ctx context.Context, id string) (*ports.Profile, error)
	listFn    func(ctx context.Context) ([]*domain.User, error)
}

func (s *stubUserService) GetProfile(ctx context.Context, id string) (*ports.Profile, error) {
	return s.profileFn(ctx, id)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func TestUserHandler_Profile(t *testing.T) {
	e, r := newTestEcho()
	stub := &stubUserService{
		profileFn: func(ctx context.Context, id string) (*ports.Profile, error) {
			return &ports.Profile{
				User:    &domain.User{ID: id, First: "Ada", Last: "Lovelace"},
				Recipes: []*domain.Recipe{{ID: "r1", Title: "Pancakes", AuthorID: id}},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users/u1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := handler.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	view, ok := r.data.(profileView)
	if !ok {
		t.Fatalf("unexpected view data: %#v", r.data)
	}
	if view.ID != "u1" || view.First != "Ada" || len(view.Recipes) != 1 {
		t.Fatalf("unexpected profile: %+v", view)
	}
}

func TestUserHandler_Profile_NotFound(t *testing.T) {
	e, _ := newTestEcho()
	stub := &stubUserService{
		profileFn: func(ctx context.Context, id string) (*ports.Profile, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := handler.Profile(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_List_OmitsPasswordHash(t *testing.T) {
	e, _ := newTestEcho()
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{{ID: "u1", Email: "a@x.com", PasswordHash: "$2a$secret"}}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	if err := handler.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["email"] != "a@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestHome(t *testing.T) {
	e, r := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := Home(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || r.name != viewHome {
		t.Fatalf("expected 200 %s, got %d %s", viewHome, rec.Code, r.name)
	}
	if rec.Header().Get(echo.HeaderContentType) != echo.MIMETextHTMLCharsetUTF8 {
		t.Fatalf("unexpected content type %q", rec.Header().Get(echo.HeaderContentType))
	}
}
