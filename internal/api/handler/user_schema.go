package handler

import "github.com/recipebox/recipe-service/internal/core/domain"

type profileView struct {
	ID      string
	First   string
	Last    string
	Picture string
	Recipes []*domain.Recipe
}

// errorResponse is the standard error envelope returned on all 4xx/5xx JSON responses.
type errorResponse struct {
	Error string `json:"error"`
}
