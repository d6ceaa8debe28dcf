package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sinsaflower/sinsaflower-backend/config"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/controller"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/repository"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/service"
	"github.com/sinsaflower/sinsaflower-backend/internal/db"
	"github.com/sinsaflower/sinsaflower-backend/internal/middleware"
	"github.com/sinsaflower/sinsaflower-backend/internal/router"
	"github.com/sinsaflower/sinsaflower-backend/internal/scheduler"
	"github.com/sinsaflower/sinsaflower-backend/internal/storage"
	ws "github.com/sinsaflower/sinsaflower-backend/internal/websocket"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
	"github.com/sinsaflower/sinsaflower-backend/pkg/redis"
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

	logger.Info("Starting SINSAFLOWER Backend Server", map[string]interface{}{
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

	// Redis는 토큰 블랙리스트 용도라 없어도 서버는 뜬다
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, token revocation disabled", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	// WebSocket hub for approval event push
	hub := ws.NewHub()
	go hub.Run()

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(db.GetDB())
	profileRepo := repository.NewBusinessProfileRepository(db.GetDB())
	activityRegionRepo := repository.NewActivityRegionRepository(db.GetDB())
	productPriceRepo := repository.NewProductPriceRepository(db.GetDB())
	notificationRepo := repository.NewNotificationRepository(db.GetDB())
	adminRepo := repository.NewAdminRepository(db.GetDB())
	regionRepo := repository.NewRegionRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		memberRepo,
		adminRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	memberService := service.NewMemberService(memberRepo, profileRepo, db.GetDB())
	notificationService := service.NewNotificationService(notificationRepo, hub, db.GetDB())
	approvalService := service.NewApprovalService(memberRepo, profileRepo, notificationService, db.GetDB())
	regionPriceService := service.NewRegionPriceService(memberRepo, activityRegionRepo, productPriceRepo, db.GetDB())
	regionService := service.NewRegionService(regionRepo)

	// Initialize storage
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService, memberService)
	memberController := controller.NewMemberController(memberService)
	adminController := controller.NewAdminController(approvalService, memberService)
	regionPriceController := controller.NewRegionPriceController(regionPriceService, regionService)
	notificationController := controller.NewNotificationController(notificationService, hub)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Start approval reminder scheduler
	reminderScheduler := scheduler.NewApprovalReminderScheduler(memberRepo)
	if err := reminderScheduler.Start(); err != nil {
		logger.Error("Failed to start approval reminder scheduler", err)
	}
	defer reminderScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		memberController,
		adminController,
		regionPriceController,
		notificationController,
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
