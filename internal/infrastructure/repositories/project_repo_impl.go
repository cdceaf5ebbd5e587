package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/models"
)

// ProjectRepository implements project data operations
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	m := &models.Project{
		ID:              project.ID,
		UserID:          project.UserID,
		Name:            project.Name,
		ProjectType:     string(project.ProjectType),
		LocationLat:     project.LocationLat.String(),
		LocationLng:     project.LocationLng.String(),
		AreaSize:        project.AreaSize.String(),
		AreaUnit:        string(project.AreaUnit),
		Description:     project.Description,
		StartDate:       project.StartDate,
		Status:          string(project.Status),
		BoundaryGeoJSON: project.BoundaryGeoJSON,
		CreatedAt:       project.CreatedAt,
		UpdatedAt:       project.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrConstraintViolation
		}
		return err
	}
	return nil
}

// GetByID gets a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	var m models.Project
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toProjectEntity(&m), nil
}

// GetByUserID gets projects for a user with pagination
func (r *ProjectRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Project, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Project{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = -1 // gorm: no LIMIT clause
	}

	var ms []models.Project
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	projects := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		projects = append(projects, toProjectEntity(&ms[i]))
	}
	return projects, int(total), nil
}

// UpdateStatus updates a project's lifecycle status
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProjectStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a project and all dependent rows
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)

	if err := deleteProjectCascade(ctx, db, id); err != nil {
		return err
	}

	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// deleteProjectCascade removes everything hanging off a project except the
// project row itself: verification logs, satellite observations, transactions
// referencing the project's credit lots, the lots and the assessments.
func deleteProjectCascade(ctx context.Context, db *gorm.DB, projectID uuid.UUID) error {
	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&models.VerificationLog{}).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&models.SatelliteObservation{}).Error; err != nil {
		return err
	}

	var creditIDs []uuid.UUID
	if err := db.WithContext(ctx).Model(&models.CreditLot{}).
		Where("project_id = ?", projectID).Pluck("id", &creditIDs).Error; err != nil {
		return err
	}
	if len(creditIDs) > 0 {
		if err := db.WithContext(ctx).
			Where("credit_id IN ?", creditIDs).
			Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
	}

	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&models.CreditLot{}).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&models.Assessment{}).Error; err != nil {
		return err
	}
	return nil
}

func toProjectEntity(m *models.Project) *entities.Project {
	return &entities.Project{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		ProjectType:     entities.ProjectType(m.ProjectType),
		LocationLat:     decimalOrZero(m.LocationLat),
		LocationLng:     decimalOrZero(m.LocationLng),
		AreaSize:        decimalOrZero(m.AreaSize),
		AreaUnit:        entities.AreaUnit(m.AreaUnit),
		Description:     m.Description,
		StartDate:       m.StartDate,
		Status:          entities.ProjectStatus(m.Status),
		BoundaryGeoJSON: m.BoundaryGeoJSON,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
