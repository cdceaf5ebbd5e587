package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
)

func seedUser(t *testing.T, repo *UserRepository, name string) *entities.User {
	t.Helper()
	u := &entities.User{
		Username:           name,
		Email:              name + "@example.com",
		PasswordHash:       "hash",
		UserType:           entities.UserTypeIndividual,
		VerificationStatus: entities.UserVerificationPending,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func seedProject(t *testing.T, repo *ProjectRepository, userID uuid.UUID) *entities.Project {
	t.Helper()
	p := seedProjectInput(userID)
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func seedProjectInput(userID uuid.UUID) *entities.Project {
	return &entities.Project{
		UserID:      userID,
		Name:        "Test Forest",
		ProjectType: entities.ProjectTypeForestry,
		LocationLat: decimal.RequireFromString("-1.2921"),
		LocationLng: decimal.RequireFromString("36.8219"),
		AreaSize:    decimal.RequireFromString("100"),
		AreaUnit:    entities.AreaUnitHectares,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      entities.ProjectStatusRegistered,
	}
}

func seedAssessment(t *testing.T, repo *AssessmentRepository, projectID uuid.UUID, estimate string) *entities.Assessment {
	t.Helper()
	a := &entities.Assessment{
		ProjectID:          projectID,
		AssessmentDate:     time.Now().UTC(),
		CarbonEstimate:     decimal.RequireFromString(estimate),
		ConfidenceScore:    decimal.RequireFromString("85"),
		Methodology:        "AI-based assessment",
		DataSources:        "{}",
		AIModelVersion:     "gpt-4",
		VerificationStatus: entities.AssessmentStatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func seedCredit(t *testing.T, repo *CreditRepository, projectID, assessmentID uuid.UUID, amount string) *entities.CreditLot {
	t.Helper()
	now := time.Now().UTC()
	lot := &entities.CreditLot{
		ProjectID:      projectID,
		AssessmentID:   assessmentID,
		CreditAmount:   decimal.RequireFromString(amount),
		IssuanceDate:   now,
		ExpiryDate:     now.AddDate(5, 0, 0),
		CertificateID:  "CC-" + projectID.String() + "-" + uuid.New().String()[:16],
		Status:         entities.CreditStatusAvailable,
		PricePerCredit: decimal.RequireFromString("25.00"),
	}
	require.NoError(t, repo.Create(context.Background(), lot))
	return lot
}
