package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipebox/recipe-service/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Profile handles GET /users/:id.
//
// @Summary      User profile with their recipes
// @Tags         users
// @Produce      html
// @Param        id   path      string  true  "User id"
// @Success      200  {string}  string  "profile page"
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Profile(c echo.Context) error {
	profile, err := h.service.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, viewProfile, profileView{
		ID:      profile.User.ID,
		First:   profile.User.First,
		Last:    profile.User.Last,
		Picture: profile.User.Picture,
		Recipes: profile.Recipes,
	})
}

// List handles GET /users. Password hashes are never serialised.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
