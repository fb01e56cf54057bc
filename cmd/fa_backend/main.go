package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/fixed_assets_app/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_assets_app/internal/core/services"
	"github.com/SscSPs/fixed_assets_app/internal/handlers"
	"github.com/SscSPs/fixed_assets_app/internal/middleware"
	"github.com/SscSPs/fixed_assets_app/internal/platform/config"
	"github.com/SscSPs/fixed_assets_app/internal/platform/locking"
	"github.com/SscSPs/fixed_assets_app/internal/platform/metrics"
	"github.com/SscSPs/fixed_assets_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/fixed_assets_app/internal/repositories/memory"
	"github.com/SscSPs/fixed_assets_app/internal/utils"
	"github.com/SscSPs/fixed_assets_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Fixed Assets API
// @version 1.0
// @description Multi-tenant fixed-asset register with yearly depreciation runs.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	var (
		repos  repositories.RepositoryProvider
		seeder workplaceSeeder
	)
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
		applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
		if err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if applied {
			logger.Info("Database migrations applied successfully.")
		} else {
			logger.Info("No new migrations to apply.")
		}

		pgRepos := pgsql.NewRepositoryProvider(dbPool)
		repos = pgRepos.RepositoryProvider
		seeder = pgRepos.Workplace
	} else {
		store := memory.NewStore()
		repos = memory.NewRepositoryProvider(store)
		seeder = store
		if cfg.BootstrapWorkplaceID == "" && cfg.BootstrapAdminUserID == "" {
			cfg.BootstrapWorkplaceID = devWorkplaceID
			cfg.BootstrapAdminUserID = devAdminUserID
		}
	}

	if cfg.BootstrapWorkplaceID != "" && cfg.BootstrapAdminUserID != "" {
		if err := seedWorkplace(ctx, seeder, cfg.BootstrapWorkplaceID, cfg.BootstrapAdminUserID, logger); err != nil {
			logger.Error("Failed to seed workplace", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if !cfg.IsProduction {
			token, err := utils.GenerateJWT(cfg.BootstrapAdminUserID, cfg.JWTSecret, devTokenTTL)
			if err != nil {
				logger.Error("Failed to mint development token", slog.String("error", err.Error()))
				os.Exit(1)
			}
			logger.Info("Development token for the seeded admin", slog.String("user_id", cfg.BootstrapAdminUserID), slog.String("token", token))
		}
	}

	// The run lock is optional; a nil interface keeps the runner lock-free.
	var locker services.RunLocker
	if cfg.RedisAddress != "" {
		rdb, err := locking.Connect(ctx, cfg.RedisAddress, 3, logger)
		if err != nil {
			logger.Warn("Redis unavailable, depreciation runs will not be locked", slog.String("error", err.Error()))
		} else {
			defer rdb.Close()
			locker = locking.NewRedisLocker(rdb, cfg.BatchLockTTL)
		}
	}

	m := metrics.New()
	serviceContainer := services.NewServiceContainer(cfg, repos, locker, m)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.Metrics(m))

	if len(cfg.CORSAllowedOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
		corsConfig.AddAllowMethods("GET", "POST", "PUT", "OPTIONS")
		corsConfig.AddAllowHeaders("Origin", "Content-Type", "Authorization")
		corsConfig.AddExposeHeaders("Content-Length", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining")
		corsConfig.AllowCredentials = true
		r.Use(cors.New(corsConfig))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, m)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
