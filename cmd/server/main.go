package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labourlink/internal/config"
	"labourlink/internal/handlers"
	"labourlink/internal/middleware"
	"labourlink/internal/repositories/mongodb"
	"labourlink/internal/services"
	"labourlink/internal/utils"
	"labourlink/pkg/cache"
	"labourlink/pkg/database"
	"labourlink/pkg/logger"
	"labourlink/pkg/sms"
	"labourlink/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.App.LogLevel),
		Format:     cfg.App.LogFormat,
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Database
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		appLogger.WithError(err).Fatal("Failed to run migrations")
	}

	// Cache is optional: repositories fall back to the database when nil.
	var cacheService mongodb.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, continuing without cache")
		} else {
			cacheService = redisCache
			defer redisCache.Close()
		}
	}

	smsProvider := buildSMSProvider(cfg, appLogger)

	// Repositories
	userRepo := mongodb.NewUserRepository(db.Database, cacheService)
	bookingRepo := mongodb.NewBookingRepository(db.Database)
	reviewRepo := mongodb.NewReviewRepository(db.Database)

	// Services
	notificationService := services.NewNotificationService(smsProvider, cfg.SMS, appLogger)
	defer notificationService.Close()

	authService := services.NewAuthService(userRepo, cfg.Security, appLogger)
	userService := services.NewUserService(userRepo, appLogger)
	bookingService := services.NewBookingService(bookingRepo, userRepo, notificationService, appLogger)
	reviewService := services.NewReviewService(reviewRepo, bookingRepo, userRepo, appLogger)
	adminService := services.NewAdminService(userRepo, bookingRepo, reviewRepo, appLogger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	userHandler := handlers.NewUserHandler(userService, appLogger)
	bookingHandler := handlers.NewBookingHandler(bookingService, appLogger)
	reviewHandler := handlers.NewReviewHandler(reviewService, appLogger)
	adminHandler := handlers.NewAdminHandler(adminService, bookingService, appLogger)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(appLogger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))

	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, authHandler)
		routes.SetupUserRoutes(v1, userHandler, cfg.Security.JWTSecret)
		routes.SetupBookingRoutes(v1, bookingHandler, cfg.Security.JWTSecret)
		routes.SetupReviewRoutes(v1, reviewHandler, cfg.Security.JWTSecret)
		routes.SetupAdminRoutes(v1, adminHandler, bookingHandler, cfg.Security.JWTSecret)
	}

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": utils.AppVersion,
		})
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		appLogger.WithField("port", cfg.App.Port).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Forced shutdown")
	}
}

// buildSMSProvider picks the configured SMS backend. A nil provider is valid:
// notifications are then logged and skipped.
func buildSMSProvider(cfg *config.Config, appLogger *logger.Logger) sms.SMSProvider {
	if !cfg.SMS.Enabled {
		return nil
	}

	switch cfg.SMS.Provider {
	case "sns":
		provider, err := sms.NewAWSSNSProvider(cfg.SMS.AWS.Region)
		if err != nil {
			appLogger.WithError(err).Warn("Failed to initialize SNS, SMS disabled")
			return nil
		}
		return provider
	default:
		if cfg.SMS.Twilio.AccountSID == "" {
			appLogger.Warn("Twilio credentials missing, SMS disabled")
			return nil
		}
		return sms.NewTwilioProvider(cfg.SMS.Twilio.AccountSID, cfg.SMS.Twilio.AuthToken, cfg.SMS.Twilio.FromNumber)
	}
}
