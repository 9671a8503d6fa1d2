package ratelimit

import (
	"fmt"
	"hive-server/internal/apierrors"
	"hive-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware allowing limit requests per minute for
// each caller of a route group. Authenticated callers are keyed by user ID,
// anonymous ones by client IP.
func (s *Service) Middleware(scope string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		caller := c.GetString("User-ID")
		if caller == "" {
			caller = "ip:" + observability.GetRealClientIP(c)
		}

		ctx = observability.WithFields(ctx,
			observability.Field{Key: "rate_limit_scope", Value: scope},
			observability.Field{Key: "rate_limit_rpm", Value: limit},
		)

		result := s.CheckRateLimit(ctx, scope+":"+caller, limit)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", (result.RetryAfterMs+999)/1000))
			s.logger.Warn(ctx, "rate limit exceeded",
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)
			apierrors.RespondWithError(c, apierrors.TooManyRequests("Rate limit exceeded"))
			c.Abort()
			return
		}

		c.Next()
	}
}
