package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
)

// VerificationLogRepository defines audit log data operations.
// Logs are append-only; there is no update.
type VerificationLogRepository interface {
	Create(ctx context.Context, log *entities.VerificationLog) error
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entities.VerificationLog, error)
}
