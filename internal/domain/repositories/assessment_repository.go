package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
)

// AssessmentRepository defines assessment data operations
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *entities.Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Assessment, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entities.Assessment, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, status entities.AssessmentStatus, reportURL null.String) error
}
