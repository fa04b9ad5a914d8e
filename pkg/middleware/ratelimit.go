package middleware

import (
	"math"
	"strconv"

	"fitness-center/pkg/ratelimit"
	"fitness-center/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RateLimit throttles a route per client IP under the given operation name.
func RateLimit(limiter *ratelimit.Limiter, operation string, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientIP := ratelimit.ClientKey(c.RealIP())
			decision, err := limiter.Check(c.Request().Context(), operation, clientIP)

			if !decision.ResetAt.IsZero() {
				h := c.Response().Header()
				h.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
				h.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			}

			if err != nil {
				retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				logger.Warn("RateLimit: request throttled",
					zap.String("operation", operation),
					zap.String("ip", clientIP),
				)
				return utils.ErrorResponse(c, err, logger)
			}

			return next(c)
		}
	}
}
