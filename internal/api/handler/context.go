package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipebox/recipe-service/internal/api/session"
	"github.com/recipebox/recipe-service/internal/core/domain"
)

// View template names.
const (
	viewHome           = "home.html"
	viewSignUp         = "sign-up.html"
	viewSignIn         = "sign-in.html"
	viewThanks         = "thanks.html"
	viewConfirm        = "confirm.html"
	viewUpdatePassword = "update-password.html"
	viewProfile        = "profile.html"
	viewRecipes        = "recipes.html"
	viewRecipeNew      = "recipe-new.html"
	viewRecipeShow     = "recipe-show.html"
	viewRecipeEdit     = "recipe-edit.html"
)

// currentUser returns the session user injected by the view-context
// middleware. Guarded routes never reach a handler without one, so a missing
// user here means the route was registered without its guard.
func currentUser(c echo.Context) (*domain.SessionUser, error) {
	user := session.User(c)
	if user == nil || user.UserID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "sign in required")
	}
	return user, nil
}

func userPath(id string) string   { return "/users/" + id }
func recipePath(id string) string { return "/recipes/" + id }
