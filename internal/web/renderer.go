// Package web renders the server-side HTML views.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/recipebox/recipe-service/internal/api/session"
	"github.com/recipebox/recipe-service/internal/core/domain"
)

//go:embed templates/*.html
var files embed.FS

// View is what every template receives: the injected session user (nil when
// signed out) and the handler's own data.
type View struct {
	User *domain.SessionUser
	Data any
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

var funcs = template.FuncMap{
	"lines": func(items []string) string { return strings.Join(items, "\n") },
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template into a buffer first, so a failing
// template never leaves a half-written page behind.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	view := View{Data: data}
	if c != nil {
		view.User = session.User(c)
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, view); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
