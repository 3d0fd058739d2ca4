package ports

import (
	"context"

	"github.com/recipebox/recipe-service/internal/core/domain"
)

// UserRepository defines persistence for user identity and credential records.
type UserRepository interface {
	// FindByEmail returns domain.ErrUnknownUser when no user has that email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ExistsByEmail is the cheap pre-check used before hashing on registration.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create returns domain.ErrDuplicateEmail when the unique email index rejects the insert.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	List(ctx context.Context) ([]*domain.User, error)
}
