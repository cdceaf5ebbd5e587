package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/models"
)

// SatelliteRepository implements satellite observation data operations
type SatelliteRepository struct {
	db *gorm.DB
}

// NewSatelliteRepository creates a new satellite repository
func NewSatelliteRepository(db *gorm.DB) *SatelliteRepository {
	return &SatelliteRepository{db: db}
}

// Create appends a new observation
func (r *SatelliteRepository) Create(ctx context.Context, obs *entities.SatelliteObservation) error {
	if obs.ID == uuid.Nil {
		obs.ID = uuid.New()
	}
	m := &models.SatelliteObservation{
		ID:                      obs.ID,
		ProjectID:               obs.ProjectID,
		CaptureDate:             obs.CaptureDate,
		NDVIValue:               obs.NDVIValue.String(),
		LandCoverClassification: obs.LandCoverClassification,
		CloudCoverPercentage:    obs.CloudCoverPercentage.String(),
		Source:                  obs.Source,
		RawDataURL:              obs.RawDataURL,
		ProcessedDataURL:        obs.ProcessedDataURL,
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByProjectID gets all observations for a project, newest first
func (r *SatelliteRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entities.SatelliteObservation, error) {
	var ms []models.SatelliteObservation
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("capture_date DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	observations := make([]*entities.SatelliteObservation, 0, len(ms))
	for i := range ms {
		observations = append(observations, toSatelliteEntity(&ms[i]))
	}
	return observations, nil
}

func toSatelliteEntity(m *models.SatelliteObservation) *entities.SatelliteObservation {
	return &entities.SatelliteObservation{
		ID:                      m.ID,
		ProjectID:               m.ProjectID,
		CaptureDate:             m.CaptureDate,
		NDVIValue:               decimalOrZero(m.NDVIValue),
		LandCoverClassification: m.LandCoverClassification,
		CloudCoverPercentage:    decimalOrZero(m.CloudCoverPercentage),
		Source:                  m.Source,
		RawDataURL:              m.RawDataURL,
		ProcessedDataURL:        m.ProcessedDataURL,
	}
}
