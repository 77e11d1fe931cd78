package middleware

import (
	"context"
	"net/http"
	"styleflame/pkg/logger"
	"time"

	jsonres "styleflame/pkg/response"

	"github.com/labstack/echo/v4"
)

// RateLimiter counts a hit for the key and reports whether it is still
// within the window budget.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimitMiddleware throttles per client IP. A broken limiter backend
// fails open; the API must not go down with Redis.
func RateLimitMiddleware(limiter RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()

			allowed, err := limiter.Allow(ctx, c.RealIP())
			if err != nil {
				logger.Error("Rate limiter unavailable", err)
				return next(c)
			}

			if !allowed {
				return c.JSON(http.StatusTooManyRequests, jsonres.Error(
					"TOO_MANY_REQUESTS", "Rate limit exceeded", nil,
				))
			}

			return next(c)
		}
	}
}
