package ports

import (
	"context"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
)

// UserRepository defines the user store lookups the request path depends on.
// Misses are reported as domain.ErrUserNotFound.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create inserts a user and returns it with ID and CreatedAt assigned.
	// Returns domain.ErrUserExists on a username or email conflict.
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
}
