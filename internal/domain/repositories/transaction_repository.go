package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
)

// TransactionRepository defines trade record data operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	GetByCreditID(ctx context.Context, creditID uuid.UUID) ([]*entities.Transaction, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int, error)
}
