package handler

import (
	"strings"

	"github.com/recipebox/recipe-service/internal/core/ports"
)

// recipeRequest accepts ingredients either as a JSON array or as the
// newline-separated textarea of the HTML form.
type recipeRequest struct {
	Title        string   `json:"title"        form:"title"        validate:"required,max=200"`
	Description  string   `json:"description"  form:"description"  validate:"max=2000"`
	Ingredients  []string `json:"ingredients"  form:"ingredients"`
	Instructions string   `json:"instructions" form:"instructions"`
	Image        string   `json:"image"        form:"image"        validate:"omitempty,url"`
}

func (r recipeRequest) toInput() ports.RecipeInput {
	var ingredients []string
	for _, item := range r.Ingredients {
		for _, line := range strings.Split(item, "\n") {
			ingredients = append(ingredients, strings.TrimRight(line, "\r"))
		}
	}
	return ports.RecipeInput{
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  ingredients,
		Instructions: r.Instructions,
		Image:        r.Image,
	}
}
