package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/recipebox/recipe-service/internal/core/domain"
	"github.com/recipebox/recipe-service/internal/core/ports"
)

type UserService struct {
	users   ports.UserRepository
	recipes ports.RecipeRepository
	logger  zerolog.Logger
}

func NewUserService(users ports.UserRepository, recipes ports.RecipeRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, recipes: recipes, logger: logger}
}

// GetProfile loads a user and the recipes they authored.
func (s *UserService) GetProfile(ctx context.Context, id string) (*ports.Profile, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipes.ListByAuthor(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &ports.Profile{User: user, Recipes: recipes}, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
