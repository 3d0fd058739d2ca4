package ports

import (
	"context"

	"github.com/recipebox/recipe-service/internal/core/domain"
)

// RecipeInput is the editable part of a recipe.
type RecipeInput struct {
	Title        string
	Description  string
	Ingredients  []string
	Instructions string
	Image        string
}

// RecipeService defines use-case operations for recipes. Mutations take the
// acting user's id; only the author may update or delete.
type RecipeService interface {
	Create(ctx context.Context, authorID string, input RecipeInput) (*domain.Recipe, error)
	Get(ctx context.Context, id string) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
	GetForEdit(ctx context.Context, id, actorID string) (*domain.Recipe, error)
	Update(ctx context.Context, id, actorID string, input RecipeInput) (*domain.Recipe, error)
	Delete(ctx context.Context, id, actorID string) error
}
