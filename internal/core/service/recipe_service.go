package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/recipebox/recipe-service/internal/core/domain"
	"github.com/recipebox/recipe-service/internal/core/ports"
)

type RecipeService struct {
	repo   ports.RecipeRepository
	logger zerolog.Logger
}

func NewRecipeService(repo ports.RecipeRepository, logger zerolog.Logger) *RecipeService {
	return &RecipeService{repo: repo, logger: logger}
}

func (s *RecipeService) Create(ctx context.Context, authorID string, in ports.RecipeInput) (*domain.Recipe, error) {
	if authorID == "" {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	recipe := &domain.Recipe{AuthorID: authorID, CreatedAt: now, UpdatedAt: now}
	apply(recipe, in)

	created, err := s.repo.Create(ctx, recipe)
	if err != nil {
		s.logger.Error().Err(err).Str("author", authorID).Msg("failed to create recipe")
		return nil, fmt.Errorf("create recipe: %w", err)
	}

	s.logger.Info().Str("recipe_id", created.ID).Str("author", authorID).Msg("recipe created")
	return created, nil
}

func (s *RecipeService) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RecipeService) List(ctx context.Context) ([]*domain.Recipe, error) {
	recipes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

// GetForEdit returns the recipe only when actorID authored it.
func (s *RecipeService) GetForEdit(ctx context.Context, id, actorID string) (*domain.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !recipe.OwnedBy(actorID) {
		return nil, domain.ErrForbidden
	}
	return recipe, nil
}

func (s *RecipeService) Update(ctx context.Context, id, actorID string, in ports.RecipeInput) (*domain.Recipe, error) {
	recipe, err := s.GetForEdit(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	apply(recipe, in)
	recipe.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, recipe); err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return recipe, nil
}

func (s *RecipeService) Delete(ctx context.Context, id, actorID string) error {
	if _, err := s.GetForEdit(ctx, id, actorID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}

	s.logger.Info().Str("recipe_id", id).Str("author", actorID).Msg("recipe deleted")
	return nil
}

func apply(r *domain.Recipe, in ports.RecipeInput) {
	r.Title = strings.TrimSpace(in.Title)
	r.Description = strings.TrimSpace(in.Description)
	r.Instructions = strings.TrimSpace(in.Instructions)
	r.Image = strings.TrimSpace(in.Image)
	r.Ingredients = cleanIngredients(in.Ingredients)
}

// cleanIngredients trims entries and drops blank lines.
func cleanIngredients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
