package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByPhone retrieves a user by their phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// FindAll retrieves all users ordered by last and first name.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update updates an existing user.
	Update(ctx context.Context, user *entity.User) error

	// ExistsByPhone checks if a user with the given phone number exists.
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}
