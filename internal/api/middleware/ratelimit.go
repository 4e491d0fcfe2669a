package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apierrors "github.com/feral-file/ff-fragment/internal/api/shared/errors"
	"github.com/feral-file/ff-fragment/internal/logger"
)

// RateLimitConfig bounds how often state-changing requests are accepted
type RateLimitConfig struct {
	// RPS is the sustained rate; zero disables the limit
	RPS   float64
	Burst int
}

// RateLimit rejects requests above the configured rate with 429
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.RPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			logger.WarnCtx(c.Request.Context(), "Rate limit exceeded",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.NewTooManyRequestsError("Too many requests"))
			return
		}
		c.Next()
	}
}
