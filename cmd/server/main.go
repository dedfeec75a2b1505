package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"clubs.backend/internal/config"
	"clubs.backend/internal/infrastructure/accounts"
	"clubs.backend/internal/infrastructure/models"
	"clubs.backend/internal/infrastructure/repositories"
	"clubs.backend/internal/infrastructure/storage"
	"clubs.backend/internal/interfaces/http/handlers"
	"clubs.backend/internal/interfaces/http/middleware"
	"clubs.backend/internal/metrics"
	"clubs.backend/internal/usecases"
	"clubs.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
		})
	}
	newAccounts = accounts.NewClient
	runServer   = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.Club{}, &models.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	gateway, err := newAccounts(cfg.Accounts)
	if err != nil {
		return fmt.Errorf("failed to initialize accounts client: %w", err)
	}

	logoStore, err := newLogoStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize logo storage: %w", err)
	}
	logger.Info(context.Background(), "Logo storage ready", zap.String("backend", cfg.Storage.Backend))

	// Repositories
	clubRepo := repositories.NewClubRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Usecases
	clubUsecase := usecases.NewClubUsecase(clubRepo, gateway)
	leaderUsecase := usecases.NewLeaderUsecase(clubRepo, gateway)
	userUsecase := usecases.NewUserUsecase(userRepo, clubRepo, gateway, cfg.Accounts)
	logoUsecase := usecases.NewLogoUsecase(clubRepo, logoStore, cfg.Logo)

	// Handlers
	clubHandler := handlers.NewClubHandler(clubUsecase, logoUsecase)
	leaderHandler := handlers.NewLeaderHandler(leaderUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)

	// Auth middleware: bearer verification plus the admin guard applied
	// declaratively per route group.
	authMiddleware := middleware.AuthMiddleware(gateway)
	adminMiddleware := middleware.RequireAdmin(userRepo)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(collector.Middleware())

	registerHealthRoute(r)
	registerMetricsRoute(r, registry)
	registerAPIV1Routes(r, routeDeps{
		clubHandler:     clubHandler,
		leaderHandler:   leaderHandler,
		userHandler:     userHandler,
		authMiddleware:  authMiddleware,
		adminMiddleware: adminMiddleware,
	})

	logger.Info(context.Background(), "Clubs backend starting", zap.String("port", cfg.Server.Port))

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func newLogoStore(cfg config.StorageConfig) (storage.LogoStore, error) {
	switch cfg.Backend {
	case config.StorageBackendMinio:
		return storage.NewMinioStore(context.Background(), cfg.Minio)
	case config.StorageBackendLocal:
		return storage.NewLocalStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
