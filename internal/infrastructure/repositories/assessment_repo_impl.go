package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/models"
)

// AssessmentRepository implements assessment data operations
type AssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Create creates a new assessment
func (r *AssessmentRepository) Create(ctx context.Context, assessment *entities.Assessment) error {
	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	m := &models.Assessment{
		ID:                 assessment.ID,
		ProjectID:          assessment.ProjectID,
		AssessmentDate:     assessment.AssessmentDate,
		CarbonEstimate:     assessment.CarbonEstimate.String(),
		ConfidenceScore:    assessment.ConfidenceScore.String(),
		Methodology:        assessment.Methodology,
		DataSources:        assessment.DataSources,
		AIModelVersion:     assessment.AIModelVersion,
		VerificationStatus: string(assessment.VerificationStatus),
		ReportURL:          assessment.ReportURL.Ptr(),
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByID gets an assessment by ID
func (r *AssessmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Assessment, error) {
	var m models.Assessment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toAssessmentEntity(&m), nil
}

// GetByProjectID gets all assessments for a project, newest first
func (r *AssessmentRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entities.Assessment, error) {
	var ms []models.Assessment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("assessment_date DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	assessments := make([]*entities.Assessment, 0, len(ms))
	for i := range ms {
		assessments = append(assessments, toAssessmentEntity(&ms[i]))
	}
	return assessments, nil
}

// UpdateVerification updates verification status and report reference, the only
// mutable assessment fields
func (r *AssessmentRepository) UpdateVerification(ctx context.Context, id uuid.UUID, status entities.AssessmentStatus, reportURL null.String) error {
	updates := map[string]interface{}{
		"verification_status": string(status),
	}
	if reportURL.Valid {
		updates["report_url"] = reportURL.String
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Assessment{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toAssessmentEntity(m *models.Assessment) *entities.Assessment {
	return &entities.Assessment{
		ID:                 m.ID,
		ProjectID:          m.ProjectID,
		AssessmentDate:     m.AssessmentDate,
		CarbonEstimate:     decimalOrZero(m.CarbonEstimate),
		ConfidenceScore:    decimalOrZero(m.ConfidenceScore),
		Methodology:        m.Methodology,
		DataSources:        m.DataSources,
		AIModelVersion:     m.AIModelVersion,
		VerificationStatus: entities.AssessmentStatus(m.VerificationStatus),
		ReportURL:          null.StringFromPtr(m.ReportURL),
	}
}
