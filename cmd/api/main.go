package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cv-match-backend/config"
	_ "cv-match-backend/docs" // Important for Swagger
	v1 "cv-match-backend/internal/delivery/http/v1"
	"cv-match-backend/internal/repository/postgres"
	"cv-match-backend/internal/repository/snapshot"
	"cv-match-backend/internal/usecase"
	"cv-match-backend/pkg/ai"
	"cv-match-backend/pkg/audit"
	"cv-match-backend/pkg/auth"
	"cv-match-backend/pkg/database"
	"cv-match-backend/pkg/logger"
	"cv-match-backend/pkg/redis"
	"cv-match-backend/pkg/renderer"
	"cv-match-backend/pkg/scraper"
	"cv-match-backend/pkg/storage"
)

// @title           CV Match Backend API
// @version         1.0
// @description     CV building, tailoring and recruiter talent matching backend.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init()
	logger.Log.Info("Starting cv-match backend", "port", cfg.Port)
	auditLog := audit.Init("cv-match-backend", cfg.Environment)
	defer auditLog.Sync()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (snapshots + rate limiting; degraded mode without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, snapshots disabled and rate limiting falls back to memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Object Storage
	storageClient, err := storage.NewClient(context.Background(), storage.ClientConfig{
		Provider:        storage.Provider(cfg.S3Provider),
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		WasabiEndpoint:  cfg.WasabiEndpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to set up object storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	qualificationRepo := postgres.NewQualificationRepository(dbPool)
	talentRepo := postgres.NewTalentRepository(dbPool)
	cvRepo := postgres.NewCVRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	snapshotStore := snapshot.NewStore(redis.Client())

	// 7. Setup External Service Clients
	aiClient := ai.NewClient(cfg.AIServiceURL, cfg.AIServiceKey)
	scraperClient := scraper.NewClient(cfg.ScraperURL, cfg.ScraperKey)
	rendererClient := renderer.NewClient(cfg.RendererURL)

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, skillRepo, qualificationRepo, snapshotStore)
	credentialUC := usecase.NewCredentialUsecase(qualificationRepo, snapshotStore)
	talentUC := usecase.NewTalentUsecase(talentRepo, auditLog, cfg.TalentExportMaxRows)
	cvUC := usecase.NewCVUsecase(cvRepo, profileUC, snapshotStore, aiClient, scraperClient, rendererClient, auditLog)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, profileUC, aiClient)

	// 9. Setup Auth Provider (JWKS)
	jwksURL := cfg.AuthProviderURL + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		ProfileUC:    profileUC,
		CredentialUC: credentialUC,
		CVUC:         cvUC,
		InterviewUC:  interviewUC,
		TalentUC:     talentUC,
		JobScraper:   scraperClient,
		Storage:      storageClient,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
