package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/memory"
	redisrepo "go-jobboard-backend/internal/repository/redis"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/validation"
)

// @title           Job Board API
// @version         1.0
// @description     Job board backend: job search, applications and role dashboards.
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

	// 2. Setup Logger
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()
	logger.Log.Info("Starting job board backend", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))

	// 3. Setup Redis (optional)
	var sessions domain.SessionStore
	healthChecks := map[string]usecase.HealthChecker{}
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory sessions", zap.Error(err))
		sessions = memory.NewSessionStore()
	} else {
		defer redis.Close()
		sessions = redisrepo.NewSessionStore(redis.Client())
		healthChecks["redis"] = redis.HealthCheck
	}

	// 4. Load seed data
	seed, err := memory.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		logger.Log.Fatal("Failed to load seed data", zap.Error(err))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Fatal("Failed to hash seed password", zap.Error(err))
	}
	seed.SetPasswordHash(string(hash))

	// 5. Setup Repositories
	store := memory.NewStore(seed)
	userRepo := memory.NewUserRepository(store)
	jobRepo := memory.NewJobRepository(store)
	applicationRepo := memory.NewApplicationRepository(store)
	profileRepo := memory.NewProfileRepository(store)

	// 6. Setup UseCases
	validate := validation.New()
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, "go-jobboard-backend", cfg.SessionTTL)

	authUC := usecase.NewAuthUsecase(userRepo, sessions, tokens, cfg.AuthVerifyPassword)
	jobUC := usecase.NewJobUsecase(jobRepo, profileRepo, userRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, userRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, userRepo, validate)
	companyUC := usecase.NewCompanyUsecase(profileRepo)
	dashboardUC := usecase.NewDashboardUsecase(jobRepo, applicationRepo, profileRepo)
	healthUC := usecase.NewHealthUsecase(healthChecks)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		ProfileUC:     profileUC,
		CompanyUC:     companyUC,
		DashboardUC:   dashboardUC,
		HealthUC:      healthUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Listen failed", zap.Error(err))
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
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("Server exiting")
}
