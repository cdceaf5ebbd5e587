package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/LancemDev/greenconnect-test/internal/config"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/collaborators/ai"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/collaborators/satellite"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/jobs"
	"github.com/LancemDev/greenconnect-test/internal/infrastructure/repositories"
	"github.com/LancemDev/greenconnect-test/internal/interfaces/http/handlers"
	"github.com/LancemDev/greenconnect-test/internal/interfaces/http/middleware"
	"github.com/LancemDev/greenconnect-test/internal/usecases"
	"github.com/LancemDev/greenconnect-test/pkg/cache"
	"github.com/LancemDev/greenconnect-test/pkg/jwt"
	"github.com/LancemDev/greenconnect-test/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger.Init(cfg.Server.Env)
	logger.Info(context.Background(), "logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Redis.Enabled {
		if err := cache.Init(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			logger.Warn(context.Background(), "redis unavailable, listing cache disabled", zap.Error(err))
		} else {
			logger.Info(context.Background(), "redis initialized")
		}
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.URL()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database not available: %w", err)
	}
	logger.Info(context.Background(), "connected to postgres")

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	assessmentRepo := repositories.NewAssessmentRepository(db)
	creditRepo := repositories.NewCreditRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	satelliteRepo := repositories.NewSatelliteRepository(db)
	logRepo := repositories.NewVerificationLogRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Collaborators
	observer := satellite.NewSimulator()
	var estimator ai.Estimator
	var reporter ai.ReportGenerator
	if cfg.OpenAI.APIKey != "" {
		client := ai.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
		estimator = client
		reporter = client
	} else {
		logger.Warn(context.Background(), "no OpenAI key configured, estimates use the deterministic fallback")
		estimator = ai.FallbackEstimator{}
	}

	listingStore := cache.NewStore("marketplace:", cfg.Assessment.ListingCacheTTL)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, uow, jwtService)
	projectUsecase := usecases.NewProjectUsecase(projectRepo, uow)
	assessmentUsecase := usecases.NewAssessmentUsecase(projectRepo, assessmentRepo, satelliteRepo, logRepo, uow, observer, estimator, reporter)
	creditUsecase := usecases.NewCreditUsecase(assessmentRepo, projectRepo, creditRepo, uow)
	marketplaceUsecase := usecases.NewMarketplaceUsecase(creditRepo, listingStore)
	exchangeUsecase := usecases.NewExchangeUsecase(creditRepo, projectRepo, txRepo, uow, marketplaceUsecase.InvalidateListings)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	projectHandler := handlers.NewProjectHandler(projectUsecase)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentUsecase, creditUsecase)
	marketplaceHandler := handlers.NewMarketplaceHandler(marketplaceUsecase, exchangeUsecase, creditUsecase)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewCreditExpiryJob(creditUsecase, cfg.Assessment.ExpirySweep)
	go expiryJob.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:        authHandler,
		projectHandler:     projectHandler,
		assessmentHandler:  assessmentHandler,
		marketplaceHandler: marketplaceHandler,
		authMiddleware:     middleware.AuthMiddleware(jwtService),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(context.Background(), "shutting down server")
		expiryJob.Stop()
		cancel()
	}()

	logger.Info(context.Background(), "server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
