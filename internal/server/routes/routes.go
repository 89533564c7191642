package routes

import (
	"strings"

	"github.com/halcyonworks/siteapi/internal/api/middleware"
	"github.com/halcyonworks/siteapi/internal/config"
	"github.com/halcyonworks/siteapi/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers) {
	logger := logging.GetGlobalLogger()

	router.GET("/health", h.Health.Check)

	v1 := router.Group("/api/v1")
	SetupContactRoutes(v1, h.Contact)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg.ExtraAllowedOrigin, cfg.IsDevelopment()))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   cfg.GlobalRPS,
		Burst: cfg.GlobalBurst,
	}))
	router.Use(handleTrailingSlash())
}

// handleTrailingSlash middleware removes the need for strict trailing slash matching
func handleTrailingSlash() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if path != "/" && strings.HasSuffix(path, "/") {
			c.Request.URL.Path = strings.TrimSuffix(path, "/")
		}

		c.Next()
	}
}
