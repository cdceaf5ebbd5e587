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

func TestVerificationLogRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	createAllTables(t, db)
	ctx := context.Background()

	users := NewUserRepository(db)
	projects := NewProjectRepository(db)
	assessments := NewAssessmentRepository(db)
	repo := NewVerificationLogRepository(db)

	owner := seedUser(t, users, "owner")
	project := seedProject(t, projects, owner.ID)
	assessment := seedAssessment(t, assessments, project.ID, "100.00")

	entry := &entities.VerificationLog{
		ProjectID:        project.ID,
		AssessmentID:     &assessment.ID,
		ModelUsed:        "fallback",
		InputData:        `{"projectType":"forestry","areaSize":"100","areaUnit":"hectares"}`,
		OutputResult:     `{"carbonEstimate":"864.5","confidenceScore":"70"}`,
		ConfidenceScore:  decimal.RequireFromString("70"),
		VerificationType: entities.VerificationTypeInitial,
	}
	require.NoError(t, repo.Create(ctx, entry))
	require.NotEqual(t, uuid.Nil, entry.ID)
	require.False(t, entry.VerificationDate.IsZero())

	older := &entities.VerificationLog{
		ProjectID:        project.ID,
		VerificationDate: time.Now().UTC().Add(-72 * time.Hour),
		ModelUsed:        "gpt-4",
		InputData:        "{}",
		OutputResult:     "{}",
		ConfidenceScore:  decimal.RequireFromString("85"),
		VerificationType: entities.VerificationTypePeriodic,
	}
	require.NoError(t, repo.Create(ctx, older))

	list, err := repo.GetByProjectID(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, entry.ID, list[0].ID)
	require.Equal(t, older.ID, list[1].ID)

	got := list[0]
	require.NotNil(t, got.AssessmentID)
	require.Equal(t, assessment.ID, *got.AssessmentID)
	require.Equal(t, "fallback", got.ModelUsed)
	require.True(t, got.ConfidenceScore.Equal(decimal.RequireFromString("70")))
	require.Nil(t, list[1].AssessmentID)
}
