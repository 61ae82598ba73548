package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	accountUseCase "github.com/boostly-app/boostly/internal/domain/usecase/account"
	authUseCase "github.com/boostly-app/boostly/internal/domain/usecase/auth"
	endorsementUseCase "github.com/boostly-app/boostly/internal/domain/usecase/endorsement"
	leaderboardUseCase "github.com/boostly-app/boostly/internal/domain/usecase/leaderboard"
	recognitionUseCase "github.com/boostly-app/boostly/internal/domain/usecase/recognition"

	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/api/handler"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/api/routes"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/auth"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/database"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/database/migration"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/logger"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/repository"
	timeProvider "github.com/boostly-app/boostly/internal/infrastructure/adapter/time"
	"github.com/boostly-app/boostly/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	defer func() {
		_ = appLogger.Flush()
	}()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Setup database configuration
	dbConfig := database.CreateConfigFromViperConfig(cfg)
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database connection", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(dbManager.DB(), tp, appLogger)
	recognitionRepo := repository.NewRecognitionRepository(dbManager.DB(), appLogger)
	endorsementRepo := repository.NewEndorsementRepository(dbManager.DB(), appLogger)

	// Unit of work (transaction boundary for transfers and redemptions)
	uow := dbManager.CreateUnitOfWork()

	// Auth adapters
	tokenService := auth.NewJWTTokenService(cfg.Auth.JWTSecret, coreport.Duration(cfg.Auth.TokenTTL), tp)
	passwordHasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Initialize use cases
	authService := authUseCase.NewService(accountRepo, passwordHasher, tokenService, tp, appLogger)
	accountService := accountUseCase.NewService(uow, accountRepo, tp, appLogger)
	recognitionService := recognitionUseCase.NewService(uow, accountRepo, recognitionRepo, endorsementRepo, tp, appLogger)
	endorsementService := endorsementUseCase.NewService(recognitionRepo, endorsementRepo, accountRepo, tp, appLogger)
	leaderboardService := leaderboardUseCase.NewService(accountRepo, appLogger)

	// Seed demo accounts when enabled for this environment
	if dbConfig.SeedUsers {
		if err := migration.CreateSeedUsers(context.Background(), authService); err != nil {
			appLogger.Error("Failed to create seed users", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Initialize API handlers
	handlers := routes.Handlers{
		Auth:        handler.NewAuthHandler(authService, appLogger),
		Account:     handler.NewAccountHandler(accountService, appLogger),
		User:        handler.NewUserHandler(accountService, appLogger),
		Recognition: handler.NewRecognitionHandler(recognitionService, appLogger),
		Endorsement: handler.NewEndorsementHandler(endorsementService, appLogger),
		Leaderboard: handler.NewLeaderboardHandler(leaderboardService, appLogger),
		Health:      handler.NewHealthHandler(dbManager, appLogger),
	}

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigin)

	// Setup routes
	routes.SetupRoutes(router, handlers, tokenService, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
