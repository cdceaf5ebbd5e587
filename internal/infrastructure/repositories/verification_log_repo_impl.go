package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/models"
)

// VerificationLogRepository implements audit log data operations
type VerificationLogRepository struct {
	db *gorm.DB
}

// NewVerificationLogRepository creates a new verification log repository
func NewVerificationLogRepository(db *gorm.DB) *VerificationLogRepository {
	return &VerificationLogRepository{db: db}
}

// Create appends a new verification log entry
func (r *VerificationLogRepository) Create(ctx context.Context, log *entities.VerificationLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.VerificationDate.IsZero() {
		log.VerificationDate = time.Now().UTC()
	}
	m := &models.VerificationLog{
		ID:               log.ID,
		ProjectID:        log.ProjectID,
		AssessmentID:     log.AssessmentID,
		VerificationDate: log.VerificationDate,
		ModelUsed:        log.ModelUsed,
		InputData:        log.InputData,
		OutputResult:     log.OutputResult,
		ConfidenceScore:  log.ConfidenceScore.String(),
		VerificationType: string(log.VerificationType),
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByProjectID gets all verification logs for a project, newest first
func (r *VerificationLogRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entities.VerificationLog, error) {
	var ms []models.VerificationLog
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("verification_date DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	logs := make([]*entities.VerificationLog, 0, len(ms))
	for i := range ms {
		logs = append(logs, toVerificationLogEntity(&ms[i]))
	}
	return logs, nil
}

func toVerificationLogEntity(m *models.VerificationLog) *entities.VerificationLog {
	return &entities.VerificationLog{
		ID:               m.ID,
		ProjectID:        m.ProjectID,
		AssessmentID:     m.AssessmentID,
		VerificationDate: m.VerificationDate,
		ModelUsed:        m.ModelUsed,
		InputData:        m.InputData,
		OutputResult:     m.OutputResult,
		ConfidenceScore:  decimalOrZero(m.ConfidenceScore),
		VerificationType: entities.VerificationType(m.VerificationType),
	}
}
