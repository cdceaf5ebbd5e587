package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/internal/domain/repositories"
	"github.com/LancemDev/greenconnect-test/pkg/crypto"
	"github.com/LancemDev/greenconnect-test/pkg/logger"
	"github.com/LancemDev/greenconnect-test/pkg/metrics"
)

const creditValidityYears = 5

// DefaultPricePerCredit is the listing price applied at issuance.
var DefaultPricePerCredit = decimal.RequireFromString("25.00")

// CreditUsecase handles credit issuance
type CreditUsecase struct {
	assessmentRepo repositories.AssessmentRepository
	projectRepo    repositories.ProjectRepository
	creditRepo     repositories.CreditRepository
	uow            repositories.UnitOfWork
}

// NewCreditUsecase creates a new credit usecase
func NewCreditUsecase(
	assessmentRepo repositories.AssessmentRepository,
	projectRepo repositories.ProjectRepository,
	creditRepo repositories.CreditRepository,
	uow repositories.UnitOfWork,
) *CreditUsecase {
	return &CreditUsecase{
		assessmentRepo: assessmentRepo,
		projectRepo:    projectRepo,
		creditRepo:     creditRepo,
		uow:            uow,
	}
}

// Issue mints a credit lot from an approved assessment. The lot's amount
// equals the assessment's carbon estimate; each assessment can back at most
// one issuance.
func (u *CreditUsecase) Issue(ctx context.Context, userID, assessmentID uuid.UUID) (*entities.CreditLot, error) {
	assessment, err := u.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.VerificationStatus != entities.AssessmentStatusApproved {
		return nil, fmt.Errorf("assessment is %s, not approved: %w", assessment.VerificationStatus, domainerrors.ErrInvalidState)
	}

	project, err := u.projectRepo.GetByID(ctx, assessment.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, domainerrors.ErrUnauthorized
	}

	existing, err := u.creditRepo.GetByAssessmentID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("credits already issued for assessment: %w", domainerrors.ErrInvalidState)
	}

	certificateID, err := crypto.NewCertificateID(project.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lot := &entities.CreditLot{
		ProjectID:               project.ID,
		AssessmentID:            assessmentID,
		CreditAmount:            assessment.CarbonEstimate,
		IssuanceDate:            now,
		ExpiryDate:              now.AddDate(creditValidityYears, 0, 0),
		CertificateID:           certificateID,
		Status:                  entities.CreditStatusAvailable,
		PricePerCredit:          DefaultPricePerCredit,
		VerificationDocumentURL: assessment.ReportURL,
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.creditRepo.Create(ctx, lot); err != nil {
			return err
		}
		if project.Status == entities.ProjectStatusAssessing {
			return u.projectRepo.UpdateStatus(ctx, project.ID, entities.ProjectStatusVerified)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.CreditsIssued.Inc()
	logger.Info(ctx, "credits issued",
		zap.String("credit_id", lot.ID.String()),
		zap.String("certificate_id", lot.CertificateID),
		zap.String("amount", lot.CreditAmount.String()))

	return lot, nil
}

// Get returns a credit lot by id
func (u *CreditUsecase) Get(ctx context.Context, creditID uuid.UUID) (*entities.CreditLot, error) {
	return u.creditRepo.GetByID(ctx, creditID)
}

// ListByProject returns all credit lots for the caller's project. Non-owners
// see the project as missing.
func (u *CreditUsecase) ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]*entities.CreditLot, error) {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, domainerrors.ErrNotFound
	}
	return u.creditRepo.GetByProjectID(ctx, projectID)
}

// ExpireDue flips available lots past their expiry date to expired and
// returns how many were affected.
func (u *CreditUsecase) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	n, err := u.creditRepo.MarkExpired(ctx, now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.CreditsExpired.Add(float64(n))
		logger.Info(ctx, "credit lots expired", zap.Int64("count", n))
	}
	return n, nil
}
