package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fixed_assets_app/cmd/docs"
	portssvc "github.com/SscSPs/fixed_assets_app/internal/core/ports/services"
	"github.com/SscSPs/fixed_assets_app/internal/middleware"
	"github.com/SscSPs/fixed_assets_app/internal/platform/config"
	"github.com/SscSPs/fixed_assets_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
) {
	RegisterValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			slog.Warn("Rate limiting disabled", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		} else {
			v1.Use(middleware.RateLimit(limiterInstance))
		}
	}

	workplace := v1.Group("/workplaces/:workplace_id")

	// Delegate route registration to specific handlers, passing required services
	registerFixedAssetRoutes(workplace, service.FixedAsset, service.Schedule, service.Statistics)
	registerDepreciationRoutes(workplace, service.Depreciation)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
