package ports

import (
	"context"

	"github.com/recipebox/recipe-service/internal/core/domain"
)

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, r *domain.Recipe) (*domain.Recipe, error)
	// FindByID returns domain.ErrRecipeNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*domain.Recipe, error)
	Update(ctx context.Context, r *domain.Recipe) error
	Delete(ctx context.Context, id string) error
}
