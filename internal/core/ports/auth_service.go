package ports

import (
	"context"

	"github.com/recipebox/recipe-service/internal/core/domain"
)

// RegisterInput carries the registration form.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	First           string
	Last            string
	Picture         string
}

// ChangePasswordInput carries the password change form for the user in UserID.
type ChangePasswordInput struct {
	UserID          string
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (*domain.User, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}
