package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
)

// SatelliteRepository defines satellite observation data operations.
// Observations are append-only; there is no update.
type SatelliteRepository interface {
	Create(ctx context.Context, obs *entities.SatelliteObservation) error
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entities.SatelliteObservation, error)
}
