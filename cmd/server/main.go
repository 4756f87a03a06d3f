package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/franchisehub/franchisehub-backend/config"
	"github.com/franchisehub/franchisehub-backend/internal/app/controller"
	"github.com/franchisehub/franchisehub-backend/internal/app/repository"
	"github.com/franchisehub/franchisehub-backend/internal/app/service"
	"github.com/franchisehub/franchisehub-backend/internal/db"
	"github.com/franchisehub/franchisehub-backend/internal/middleware"
	"github.com/franchisehub/franchisehub-backend/internal/router"
	"github.com/franchisehub/franchisehub-backend/internal/scheduler"
	"github.com/franchisehub/franchisehub-backend/internal/storage"
	"github.com/franchisehub/franchisehub-backend/pkg/logger"
	"github.com/franchisehub/franchisehub-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting FranchiseHub Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis backs token revocation and inquiry rate limiting; both degrade
	// gracefully without it, so a failure here is not fatal
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, token revocation and rate limiting disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	franchiseRepo := repository.NewFranchiseRepository(db.GetDB())
	businessRepo := repository.NewBusinessRepository(db.GetDB())
	adRepo := repository.NewAdvertisementRepository(db.GetDB())
	inquiryRepo := repository.NewInquiryRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	franchiseService := service.NewFranchiseService(franchiseRepo)
	businessService := service.NewBusinessService(businessRepo)
	adService := service.NewAdvertisementService(adRepo)
	inquiryService := service.NewInquiryService(inquiryRepo)

	// S3 storage for listing images
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService, cfg.JWT.Secret)
	franchiseController := controller.NewFranchiseController(franchiseService)
	businessController := controller.NewBusinessController(businessService)
	adController := controller.NewAdvertisementController(adService)
	inquiryController := controller.NewInquiryController(inquiryService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Campaign expiry scheduler
	adExpiryScheduler := scheduler.NewAdExpiryScheduler(adService)
	if err := adExpiryScheduler.Start(); err != nil {
		logger.Fatal("Failed to start ad expiry scheduler", err)
	}
	defer adExpiryScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		franchiseController,
		businessController,
		adController,
		inquiryController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
