package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/internal/domain/repositories"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/collaborators/ai"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/collaborators/satellite"
	"github.com/LancemDev/greenconnect-test/pkg/logger"
	"github.com/LancemDev/greenconnect-test/pkg/metrics"
)

// AssessmentUsecase orchestrates satellite observation, AI estimation and
// assessment persistence.
type AssessmentUsecase struct {
	projectRepo    repositories.ProjectRepository
	assessmentRepo repositories.AssessmentRepository
	satelliteRepo  repositories.SatelliteRepository
	logRepo        repositories.VerificationLogRepository
	uow            repositories.UnitOfWork
	observer       satellite.Observer
	estimator      ai.Estimator
	reporter       ai.ReportGenerator
}

// NewAssessmentUsecase creates a new assessment usecase
func NewAssessmentUsecase(
	projectRepo repositories.ProjectRepository,
	assessmentRepo repositories.AssessmentRepository,
	satelliteRepo repositories.SatelliteRepository,
	logRepo repositories.VerificationLogRepository,
	uow repositories.UnitOfWork,
	observer satellite.Observer,
	estimator ai.Estimator,
	reporter ai.ReportGenerator,
) *AssessmentUsecase {
	return &AssessmentUsecase{
		projectRepo:    projectRepo,
		assessmentRepo: assessmentRepo,
		satelliteRepo:  satelliteRepo,
		logRepo:        logRepo,
		uow:            uow,
		observer:       observer,
		estimator:      estimator,
		reporter:       reporter,
	}
}

// Request runs a full assessment for a project: capture an observation,
// estimate sequestration, and record assessment, observation and audit log in
// one transaction. A collaborator failure degrades to deterministic fallbacks
// instead of failing the request.
func (u *AssessmentUsecase) Request(ctx context.Context, userID, projectID uuid.UUID) (*entities.Assessment, *entities.AssessmentResult, error) {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	if project.UserID != userID {
		return nil, nil, domainerrors.ErrUnauthorized
	}
	if project.Status == entities.ProjectStatusCompleted {
		return nil, nil, fmt.Errorf("project is completed: %w", domainerrors.ErrInvalidState)
	}

	obs, err := u.observer.Observe(ctx, project.LocationLat, project.LocationLng, project.AreaSize, project.AreaUnit)
	if err != nil {
		logger.Warn(ctx, "satellite observation failed, using static fallback",
			zap.String("project_id", projectID.String()), zap.Error(err))
		obs = satellite.FallbackObservation()
	}
	obs.ProjectID = projectID

	estimate, err := u.estimator.Estimate(ctx, ai.EstimateInput{
		ProjectType: project.ProjectType,
		AreaSize:    project.AreaSize,
		AreaUnit:    project.AreaUnit,
		Observation: obs,
	})
	if err != nil {
		if !errors.Is(err, domainerrors.ErrCollaboratorUnavailable) {
			return nil, nil, err
		}
		logger.Warn(ctx, "estimator unavailable, using fallback estimate",
			zap.String("project_id", projectID.String()), zap.Error(err))
		estimate = ai.FallbackEstimate(project.ProjectType, project.AreaSize, project.AreaUnit)
	}

	source := "model"
	if estimate.Fallback {
		source = "fallback"
	}
	metrics.AssessmentsRequested.WithLabelValues(source).Inc()

	assessment := &entities.Assessment{
		ProjectID:          projectID,
		AssessmentDate:     time.Now().UTC(),
		CarbonEstimate:     estimate.CarbonEstimate,
		ConfidenceScore:    estimate.ConfidenceScore,
		Methodology:        estimate.Methodology,
		DataSources:        estimate.DataSources,
		AIModelVersion:     estimate.ModelVersion,
		VerificationStatus: entities.AssessmentStatusPending,
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.satelliteRepo.Create(ctx, obs); err != nil {
			return err
		}
		if err := u.assessmentRepo.Create(ctx, assessment); err != nil {
			return err
		}
		if project.Status == entities.ProjectStatusRegistered {
			if err := u.projectRepo.UpdateStatus(ctx, projectID, entities.ProjectStatusAssessing); err != nil {
				return err
			}
		}
		return u.logRepo.Create(ctx, u.buildAuditLog(project, obs, assessment, estimate))
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Info(ctx, "assessment recorded",
		zap.String("assessment_id", assessment.ID.String()),
		zap.String("project_id", projectID.String()),
		zap.Bool("fallback", estimate.Fallback))

	return assessment, &entities.AssessmentResult{
		AssessmentID:  assessment.ID,
		ObservationID: obs.ID,
		Fallback:      estimate.Fallback,
	}, nil
}

// Get returns an assessment by id
func (u *AssessmentUsecase) Get(ctx context.Context, assessmentID uuid.UUID) (*entities.Assessment, error) {
	return u.assessmentRepo.GetByID(ctx, assessmentID)
}

// ListByProject returns all assessments for the caller's project, newest
// first. Non-owners see the project as missing.
func (u *AssessmentUsecase) ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]*entities.Assessment, error) {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, domainerrors.ErrNotFound
	}
	return u.assessmentRepo.GetByProjectID(ctx, projectID)
}

// Review approves or rejects a pending assessment. Approval attaches a report
// reference; report content generation is best effort and never blocks the
// decision.
func (u *AssessmentUsecase) Review(ctx context.Context, userID, assessmentID uuid.UUID, status entities.AssessmentStatus) (*entities.Assessment, error) {
	if status != entities.AssessmentStatusApproved && status != entities.AssessmentStatusRejected {
		return nil, domainerrors.BadRequest("status must be approved or rejected")
	}

	assessment, err := u.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.VerificationStatus != entities.AssessmentStatusPending {
		return nil, fmt.Errorf("assessment already %s: %w", assessment.VerificationStatus, domainerrors.ErrInvalidState)
	}

	project, err := u.projectRepo.GetByID(ctx, assessment.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, domainerrors.ErrUnauthorized
	}

	reportURL := null.String{}
	if status == entities.AssessmentStatusApproved {
		reportURL = null.StringFrom(fmt.Sprintf("/reports/%s_%s.pdf", project.ID, time.Now().UTC().Format("20060102")))

		if u.reporter != nil {
			if _, err := u.reporter.GenerateReport(ctx, ai.ReportInput{
				ProjectName:     project.Name,
				ProjectType:     project.ProjectType,
				LocationLat:     project.LocationLat,
				LocationLng:     project.LocationLng,
				AreaSize:        project.AreaSize,
				AreaUnit:        project.AreaUnit,
				StartDate:       project.StartDate.Format("2006-01-02"),
				CarbonEstimate:  assessment.CarbonEstimate,
				ConfidenceScore: assessment.ConfidenceScore,
				Methodology:     assessment.Methodology,
			}); err != nil {
				logger.Warn(ctx, "report generation failed", zap.Error(err))
			}
		}
	}

	if err := u.assessmentRepo.UpdateVerification(ctx, assessmentID, status, reportURL); err != nil {
		return nil, err
	}

	assessment.VerificationStatus = status
	assessment.ReportURL = reportURL
	return assessment, nil
}

func (u *AssessmentUsecase) buildAuditLog(project *entities.Project, obs *entities.SatelliteObservation, assessment *entities.Assessment, estimate *ai.EstimateResult) *entities.VerificationLog {
	input, _ := json.Marshal(map[string]interface{}{
		"project_type": project.ProjectType,
		"area_size":    project.AreaSize,
		"area_unit":    project.AreaUnit,
		"ndvi":         obs.NDVIValue,
		"land_cover":   obs.LandCoverClassification,
		"cloud_cover":  obs.CloudCoverPercentage,
	})
	output, _ := json.Marshal(estimate)

	return &entities.VerificationLog{
		ProjectID:        project.ID,
		AssessmentID:     &assessment.ID,
		VerificationDate: assessment.AssessmentDate,
		ModelUsed:        estimate.ModelVersion,
		InputData:        string(input),
		OutputResult:     string(output),
		ConfidenceScore:  estimate.ConfidenceScore,
		VerificationType: entities.VerificationTypeInitial,
	}
}
