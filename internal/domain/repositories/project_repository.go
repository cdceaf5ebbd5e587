package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
)

// ProjectRepository defines project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Project, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProjectStatus) error
	// Delete removes the project and cascades to assessments, credit lots,
	// transactions, satellite observations and verification logs.
	Delete(ctx context.Context, id uuid.UUID) error
}
