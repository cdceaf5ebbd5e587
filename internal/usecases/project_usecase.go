package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/internal/domain/repositories"
	"github.com/LancemDev/greenconnect-test/pkg/logger"
)

// ProjectUsecase handles sequestration project business logic
type ProjectUsecase struct {
	projectRepo repositories.ProjectRepository
	uow         repositories.UnitOfWork
}

// NewProjectUsecase creates a new project usecase
func NewProjectUsecase(projectRepo repositories.ProjectRepository, uow repositories.UnitOfWork) *ProjectUsecase {
	return &ProjectUsecase{
		projectRepo: projectRepo,
		uow:         uow,
	}
}

// Register creates a new project owned by userID
func (u *ProjectUsecase) Register(ctx context.Context, userID uuid.UUID, input *entities.RegisterProjectInput) (*entities.Project, error) {
	lat, err := decimal.NewFromString(input.LocationLat)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid latitude")
	}
	lng, err := decimal.NewFromString(input.LocationLng)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid longitude")
	}
	area, err := decimal.NewFromString(input.AreaSize)
	if err != nil || !area.IsPositive() {
		return nil, domainerrors.BadRequest("area size must be a positive number")
	}
	if lat.LessThan(decimal.NewFromInt(-90)) || lat.GreaterThan(decimal.NewFromInt(90)) {
		return nil, domainerrors.BadRequest("latitude out of range")
	}
	if lng.LessThan(decimal.NewFromInt(-180)) || lng.GreaterThan(decimal.NewFromInt(180)) {
		return nil, domainerrors.BadRequest("longitude out of range")
	}

	startDate, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return nil, domainerrors.BadRequest("start date must be YYYY-MM-DD")
	}

	areaUnit := entities.AreaUnit(input.AreaUnit)
	if areaUnit == "" {
		areaUnit = entities.AreaUnitAcres
	}

	project := &entities.Project{
		UserID:          userID,
		Name:            input.Name,
		Description:     input.Description,
		ProjectType:     entities.ProjectType(input.ProjectType),
		LocationLat:     lat,
		LocationLng:     lng,
		AreaSize:        area,
		AreaUnit:        areaUnit,
		BoundaryGeoJSON: input.BoundaryGeoJSON,
		Status:          entities.ProjectStatusRegistered,
		StartDate:       startDate,
	}

	if err := u.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	logger.Info(ctx, "project registered",
		zap.String("project_id", project.ID.String()),
		zap.String("type", string(project.ProjectType)))

	return project, nil
}

// Get returns a project by id. Projects are private to their owner; a
// mismatch reads the same as a missing project.
func (u *ProjectUsecase) Get(ctx context.Context, userID, projectID uuid.UUID) (*entities.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, domainerrors.ErrNotFound
	}
	return project, nil
}

// ListByOwner returns projects owned by userID together with the total count
func (u *ProjectUsecase) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Project, int, error) {
	return u.projectRepo.GetByUserID(ctx, userID, limit, offset)
}

// Delete removes a project owned by userID together with its assessments,
// observations, credits and transactions.
func (u *ProjectUsecase) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.UserID != userID {
		return domainerrors.ErrUnauthorized
	}

	return u.uow.Do(ctx, func(ctx context.Context) error {
		return u.projectRepo.Delete(ctx, projectID)
	})
}

// AdvanceStatus moves a project one step along its lifecycle. Used by the
// administrative endpoint that promotes verified projects to active and
// active projects to completed; earlier transitions happen as side effects
// of assessment and issuance.
func (u *ProjectUsecase) AdvanceStatus(ctx context.Context, userID, projectID uuid.UUID, next entities.ProjectStatus) (*entities.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, domainerrors.ErrUnauthorized
	}

	if err := project.TransitionTo(next); err != nil {
		return nil, err
	}

	if err := u.projectRepo.UpdateStatus(ctx, projectID, next); err != nil {
		return nil, err
	}

	logger.Info(ctx, "project status advanced",
		zap.String("project_id", projectID.String()),
		zap.String("status", string(next)))

	return project, nil
}
