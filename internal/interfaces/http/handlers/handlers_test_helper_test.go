package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/LancemDev/greenconnect-test/internal/infrastructure/collaborators/ai"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/collaborators/satellite"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/repositories"
	"github.com/LancemDev/greenconnect-test/internal/interfaces/http/middleware"
	"github.com/LancemDev/greenconnect-test/internal/usecases"
	"github.com/LancemDev/greenconnect-test/pkg/jwt"
)

var testSchema = []string{
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
}

// newTestRouter wires the full API against sqlite with the deterministic
// estimator, the same shape main assembles in production.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	for _, q := range testSchema {
		require.NoError(t, db.Exec(q).Error)
	}

	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	assessmentRepo := repositories.NewAssessmentRepository(db)
	satelliteRepo := repositories.NewSatelliteRepository(db)
	logRepo := repositories.NewVerificationLogRepository(db)
	creditRepo := repositories.NewCreditRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)

	authUsecase := usecases.NewAuthUsecase(userRepo, uow, jwtService)
	projectUsecase := usecases.NewProjectUsecase(projectRepo, uow)
	assessmentUsecase := usecases.NewAssessmentUsecase(
		projectRepo, assessmentRepo, satelliteRepo, logRepo, uow,
		satellite.NewSeededSimulator(1), ai.FallbackEstimator{}, nil,
	)
	creditUsecase := usecases.NewCreditUsecase(assessmentRepo, projectRepo, creditRepo, uow)
	marketplaceUsecase := usecases.NewMarketplaceUsecase(creditRepo, nil)
	exchangeUsecase := usecases.NewExchangeUsecase(creditRepo, projectRepo, txRepo, uow, marketplaceUsecase.InvalidateListings)

	authHandler := NewAuthHandler(authUsecase)
	projectHandler := NewProjectHandler(projectUsecase)
	assessmentHandler := NewAssessmentHandler(assessmentUsecase, creditUsecase)
	marketplaceHandler := NewMarketplaceHandler(marketplaceUsecase, exchangeUsecase, creditUsecase)

	authMw := middleware.AuthMiddleware(jwtService)

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())

	v1 := r.Group("/api/v1")
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authMw, authHandler.Me)
	auth.DELETE("/me", authMw, authHandler.DeleteAccount)

	projects := v1.Group("/projects")
	projects.Use(authMw)
	projects.POST("", projectHandler.Register)
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.DELETE("/:id", projectHandler.Delete)
	projects.PATCH("/:id/status", projectHandler.AdvanceStatus)
	projects.POST("/:id/assessments", assessmentHandler.Request)
	projects.GET("/:id/assessments", assessmentHandler.List)
	projects.GET("/:id/credits", assessmentHandler.ListProjectCredits)

	assessments := v1.Group("/assessments")
	assessments.Use(authMw)
	assessments.POST("/:id/approve", assessmentHandler.Review)
	assessments.POST("/:id/credits", assessmentHandler.IssueCredits)

	marketplace := v1.Group("/marketplace")
	marketplace.GET("/credits", marketplaceHandler.ListCredits)
	marketplace.GET("/credits/:id", marketplaceHandler.GetCredit)
	marketplace.POST("/credits/:id/purchase", authMw, marketplaceHandler.Purchase)
	marketplace.GET("/transactions", authMw, marketplaceHandler.Transactions)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

// registerUser creates an account through the API and returns its access token
// and user id.
func registerUser(t *testing.T, r *gin.Engine, name string) (token, userID string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": name,
		"email":    name + "@example.com",
		"password": "s3cretpass",
		"userType": "individual",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	token = body["accessToken"].(string)
	userID = body["user"].(map[string]interface{})["id"].(string)
	return token, userID
}

func registerProject(t *testing.T, r *gin.Engine, token string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", token, gin.H{
		"name":        "Kijani Forest",
		"projectType": "forestry",
		"locationLat": "-1.2921",
		"locationLng": "36.8219",
		"areaSize":    "100",
		"areaUnit":    "hectares",
		"startDate":   "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["id"].(string)
}
