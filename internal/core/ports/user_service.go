package ports

import (
	"context"

	"github.com/recipebox/recipe-service/internal/core/domain"
)

// Profile is a user together with the recipes they authored.
type Profile struct {
	User    *domain.User
	Recipes []*domain.Recipe
}

type UserService interface {
	GetProfile(ctx context.Context, id string) (*Profile, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
