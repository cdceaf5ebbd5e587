package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// Delete removes the user and cascades to all dependent rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
