package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainrepos "github.com/LancemDev/greenconnect-test/internal/domain/repositories"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/collaborators/ai"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/repositories"
)

// testEnv wires real sqlite-backed repositories for usecase tests
type testEnv struct {
	db          *gorm.DB
	users       *repositories.UserRepository
	projects    *repositories.ProjectRepository
	assessments *repositories.AssessmentRepository
	satellites  *repositories.SatelliteRepository
	logs        *repositories.VerificationLogRepository
	credits     *repositories.CreditRepository
	txs         *repositories.TransactionRepository
	uow         domainrepos.UnitOfWork
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")

	for _, q := range []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			user_type TEXT NOT NULL,
			verification_status TEXT DEFAULT 'pending',
			profile_img_url TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE projects (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			project_type TEXT NOT NULL,
			location_lat TEXT NOT NULL,
			location_lng TEXT NOT NULL,
			area_size TEXT NOT NULL,
			area_unit TEXT NOT NULL,
			description TEXT,
			start_date DATETIME NOT NULL,
			status TEXT DEFAULT 'registered',
			boundary_geojson TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE carbon_assessments (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			assessment_date DATETIME NOT NULL,
			carbon_estimate TEXT NOT NULL,
			confidence_score TEXT NOT NULL,
			methodology TEXT NOT NULL,
			data_sources TEXT NOT NULL,
			ai_model_version TEXT NOT NULL,
			verification_status TEXT DEFAULT 'pending',
			report_url TEXT
		);`,
		`CREATE TABLE carbon_credits (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			assessment_id TEXT NOT NULL,
			credit_amount TEXT NOT NULL,
			issuance_date DATETIME NOT NULL,
			expiry_date DATETIME,
			certificate_id TEXT NOT NULL UNIQUE,
			status TEXT DEFAULT 'available',
			price_per_credit TEXT,
			verification_document_url TEXT
		);`,
		`CREATE TABLE transactions (
			id TEXT PRIMARY KEY,
			credit_id TEXT NOT NULL,
			buyer_id TEXT NOT NULL,
			seller_id TEXT NOT NULL,
			amount TEXT NOT NULL,
			price_per_unit TEXT NOT NULL,
			total_price TEXT NOT NULL,
			transaction_date DATETIME NOT NULL,
			status TEXT DEFAULT 'pending'
		);`,
		`CREATE TABLE satellite_observations (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			capture_date DATETIME NOT NULL,
			ndvi_value TEXT,
			land_cover_classification TEXT,
			cloud_cover_percentage TEXT,
			source TEXT NOT NULL,
			raw_data_url TEXT,
			processed_data_url TEXT
		);`,
		`CREATE TABLE verification_logs (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			assessment_id TEXT,
			verification_date DATETIME NOT NULL,
			model_used TEXT NOT NULL,
			input_data TEXT,
			output_result TEXT,
			confidence_score TEXT,
			verification_type TEXT NOT NULL
		);`,
	} {
		require.NoError(t, db.Exec(q).Error)
	}

	return &testEnv{
		db:          db,
		users:       repositories.NewUserRepository(db),
		projects:    repositories.NewProjectRepository(db),
		assessments: repositories.NewAssessmentRepository(db),
		satellites:  repositories.NewSatelliteRepository(db),
		logs:        repositories.NewVerificationLogRepository(db),
		credits:     repositories.NewCreditRepository(db),
		txs:         repositories.NewTransactionRepository(db),
		uow:         repositories.NewUnitOfWork(db),
	}
}

func (e *testEnv) seedUser(t *testing.T, name string) *entities.User {
	t.Helper()
	u := &entities.User{
		Username:           name,
		Email:              name + "@example.com",
		PasswordHash:       "hash",
		UserType:           entities.UserTypeIndividual,
		VerificationStatus: entities.UserVerificationPending,
	}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *testEnv) seedProject(t *testing.T, owner *entities.User, projectType entities.ProjectType, status entities.ProjectStatus) *entities.Project {
	t.Helper()
	p := &entities.Project{
		UserID:      owner.ID,
		Name:        "Kijani Forest",
		ProjectType: projectType,
		LocationLat: decimal.RequireFromString("-1.2921"),
		LocationLng: decimal.RequireFromString("36.8219"),
		AreaSize:    decimal.RequireFromString("100"),
		AreaUnit:    entities.AreaUnitHectares,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      status,
	}
	require.NoError(t, e.projects.Create(context.Background(), p))
	return p
}

func (e *testEnv) seedAssessment(t *testing.T, projectID uuid.UUID, estimate string, status entities.AssessmentStatus) *entities.Assessment {
	t.Helper()
	a := &entities.Assessment{
		ProjectID:          projectID,
		AssessmentDate:     time.Now().UTC(),
		CarbonEstimate:     decimal.RequireFromString(estimate),
		ConfidenceScore:    decimal.RequireFromString("85"),
		Methodology:        "AI-based assessment",
		DataSources:        "{}",
		AIModelVersion:     "gpt-4",
		VerificationStatus: status,
	}
	require.NoError(t, e.assessments.Create(context.Background(), a))
	return a
}

// stubEstimator returns a canned estimate or error
type stubEstimator struct {
	result *ai.EstimateResult
	err    error
	calls  int
}

func (s *stubEstimator) Estimate(ctx context.Context, input ai.EstimateInput) (*ai.EstimateResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

// stubObserver fails or delegates to the fallback-shaped observation
type stubObserver struct {
	err error
}

func (s *stubObserver) Observe(ctx context.Context, lat, lng, area decimal.Decimal, unit entities.AreaUnit) (*entities.SatelliteObservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entities.SatelliteObservation{
		CaptureDate:             time.Now().UTC(),
		NDVIValue:               decimal.RequireFromString("0.72"),
		LandCoverClassification: "Woodland",
		CloudCoverPercentage:    decimal.RequireFromString("8"),
		Source:                  "Sentinel-2 (simulated)",
	}, nil
}

// stubReporter records report generation calls
type stubReporter struct {
	err   error
	calls int
}

func (s *stubReporter) GenerateReport(ctx context.Context, input ai.ReportInput) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "# Verification Report", nil
}
