package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipebox/recipe-service/internal/api/metrics"
	"github.com/recipebox/recipe-service/internal/core/domain"
	"github.com/recipebox/recipe-service/internal/core/ports"
)

// RecipeHandler handles HTTP requests for recipe operations.
type RecipeHandler struct {
	service ports.RecipeService
}

func NewRecipeHandler(service ports.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// List handles GET /recipes.
//
// @Summary      List all recipes
// @Tags         recipes
// @Produce      html
// @Success      200  {string}  string  "recipe list"
// @Router       /recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, viewRecipes, recipes)
}

// New handles GET /recipes/new.
func (h *RecipeHandler) New(c echo.Context) error {
	return c.Render(http.StatusOK, viewRecipeNew, &domain.Recipe{})
}

// Create handles POST /recipes. The author is always the session user.
//
// @Summary      Create a recipe
// @Tags         recipes
// @Accept       json,x-www-form-urlencoded
// @Param        body  body      recipeRequest  true  "Recipe"
// @Success      302   {string}  string  "redirect to /recipes/{id}"
// @Failure      422   {object}  errorResponse
// @Router       /recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req recipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	recipe, err := h.service.Create(c.Request().Context(), user.UserID, req.toInput())
	metrics.RecipeWritesTotal.WithLabelValues("create", metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, recipePath(recipe.ID))
}

// Show handles GET /recipes/:id.
//
// @Summary      Get a recipe
// @Tags         recipes
// @Produce      html
// @Param        id   path      string  true  "Recipe id"
// @Success      200  {string}  string  "recipe page"
// @Failure      404  {object}  errorResponse
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) Show(c echo.Context) error {
	recipe, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, viewRecipeShow, recipe)
}

// Edit handles GET /recipes/:id/edit.
func (h *RecipeHandler) Edit(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	recipe, err := h.service.GetForEdit(c.Request().Context(), c.Param("id"), user.UserID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, viewRecipeEdit, recipe)
}

// Update handles PUT /recipes/:id.
//
// @Summary      Update a recipe
// @Tags         recipes
// @Accept       json,x-www-form-urlencoded
// @Param        id    path      string         true  "Recipe id"
// @Param        body  body      recipeRequest  true  "Recipe"
// @Success      302   {string}  string  "redirect to /recipes/{id}"
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /recipes/{id} [put]
func (h *RecipeHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req recipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	recipe, err := h.service.Update(c.Request().Context(), c.Param("id"), user.UserID, req.toInput())
	metrics.RecipeWritesTotal.WithLabelValues("update", metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, recipePath(recipe.ID))
}

// Delete handles DELETE /recipes/:id and returns the author to their profile.
//
// @Summary      Delete a recipe
// @Tags         recipes
// @Param        id   path      string  true  "Recipe id"
// @Success      302  {string}  string  "redirect to /users/{id}"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	err = h.service.Delete(c.Request().Context(), c.Param("id"), user.UserID)
	metrics.RecipeWritesTotal.WithLabelValues("delete", metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, userPath(user.UserID))
}
