package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-fragment/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, writeLimit middleware.RateLimitConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handler.HealthCheck)

		// Supply and holdings (public read access)
		v1.GET("/stats", handler.GetStats)
		v1.GET("/owned", handler.GetOwned)
		v1.GET("/tokens/:id/uri", handler.GetTokenURI)

		// Session state
		v1.GET("/session", handler.GetSession)
		v1.PUT("/session/network", handler.SetNetwork)

		// Operations
		limited := middleware.RateLimit(writeLimit)
		v1.GET("/operations", handler.GetOperations)
		v1.POST("/mint", limited, handler.Mint)
		v1.POST("/burn", limited, handler.Burn)

		// Surplus withdrawal moves contract funds (requires authentication)
		v1.POST("/withdraw", middleware.Auth(authCfg), limited, handler.Withdraw)

		// Presenter desk
		v1.GET("/prompts", handler.GetPrompts)
		v1.POST("/prompts/:id/decision", handler.DecidePrompt)
		v1.GET("/notifications", handler.GetNotifications)

		// Media
		v1.GET("/media/hero", handler.GetHeroMedia)
	}
}
