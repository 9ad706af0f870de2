package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/enrichlens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *slog.Logger) *gin.Engine {
	// Set Gin mode based on environment
	switch cfg.Server.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(CompressionMiddleware())

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	{
		enrich := v1.Group("/enrich")
		{
			enrich.POST("/company", handler.EnrichCompany)
			enrich.POST("/contact", handler.EnrichContact)
		}
		v1.POST("/validate", handler.Validate)
	}

	return router
}
