package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/recipe-service/internal/api/session"
	"github.com/recipebox/recipe-service/internal/core/domain"
)

func newContext(user *domain.SessionUser) echo.Context {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	session.SetUser(c, user)
	return c
}

func TestRenderer_AllTemplatesParse(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, name := range []string{
		"home.html", "sign-up.html", "sign-in.html", "thanks.html", "confirm.html",
		"update-password.html", "profile.html", "recipes.html", "recipe-new.html",
		"recipe-show.html", "recipe-edit.html",
	} {
		assert.NotNil(t, r.templates.Lookup(name), name)
	}
}

func TestRenderer_BranchesOnSessionUser(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var anon bytes.Buffer
	require.NoError(t, r.Render(&anon, "home.html", nil, newContext(nil)))
	assert.Contains(t, anon.String(), `href="/auth/sign-in"`)
	assert.NotContains(t, anon.String(), "Sign out")

	var signedIn bytes.Buffer
	user := &domain.SessionUser{Email: "a@x.com", UserID: "abc"}
	require.NoError(t, r.Render(&signedIn, "home.html", nil, newContext(user)))
	assert.Contains(t, signedIn.String(), "Signed in as a@x.com")
	assert.Contains(t, signedIn.String(), `href="/users/abc"`)
}

func TestRenderer_RecipeShowOwnerControls(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	recipe := &domain.Recipe{ID: "r1", Title: "Soup", Ingredients: []string{"water"}, AuthorID: "abc"}

	var owner bytes.Buffer
	require.NoError(t, r.Render(&owner, "recipe-show.html", recipe, newContext(&domain.SessionUser{UserID: "abc"})))
	assert.Contains(t, owner.String(), `href="/recipes/r1/edit"`)

	var other bytes.Buffer
	require.NoError(t, r.Render(&other, "recipe-show.html", recipe, newContext(&domain.SessionUser{UserID: "zzz"})))
	assert.NotContains(t, other.String(), `href="/recipes/r1/edit"`)
	assert.Contains(t, other.String(), "<li>water</li>")
}

func TestRenderer_EscapesUserContent(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	recipe := &domain.Recipe{ID: "r1", Title: "<script>alert(1)</script>", AuthorID: "abc"}
	require.NoError(t, r.Render(&buf, "recipe-show.html", recipe, newContext(nil)))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}

func TestRenderer_UnknownTemplateWritesNothing(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "missing.html", nil, newContext(nil)))
	assert.Zero(t, buf.Len())
}
