package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"fluxcapital-backend/internal/delivery/http/response"
	"fluxcapital-backend/internal/ratelimiter"
	"fluxcapital-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig wires stores into the rate-limit middleware. Limiter is
// authoritative; when it errors (a Redis store losing its connection) the
// check fails over to Fallback rather than rejecting, since availability
// beats precision for a public contact form.
type RateLimitConfig struct {
	Limiter  ratelimiter.Limiter
	Fallback ratelimiter.Limiter
	// KeyFunc derives the client identifier (default: forwarded-for address)
	KeyFunc func(*gin.Context) string
}

// RateLimitMiddleware rejects requests over the admission quota before the
// body is read or any email is sent.
func RateLimitMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = ClientID
	}

	return func(c *gin.Context) {
		key := cfg.KeyFunc(c)

		decision, err := cfg.Limiter.Admit(c.Request.Context(), key)
		if err != nil && cfg.Fallback != nil {
			logger.Log.Warn("rate limit store failed, using fallback", "error", err)
			decision, err = cfg.Fallback.Admit(c.Request.Context(), key)
		}
		if err != nil {
			// No working store left; fail open.
			logger.Log.Error("rate limit check failed, admitting", "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Header("X-RateLimit-Reset", decision.ResetAt.Format(time.RFC3339))

		if !decision.Allowed {
			retryAfter := int(time.Until(decision.ResetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("rate limit exceeded",
				"client", key,
				"path", c.FullPath(),
				"request_id", c.GetString("RequestID"))

			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// ClientID derives the rate-limit bucket key from the most trustworthy
// available origin address. Callers with no derivable address share the
// "unknown" bucket.
func ClientID(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		// First hop is the originating client
		if i := strings.IndexByte(xff, ','); i >= 0 {
			xff = xff[:i]
		}
		if ip := strings.TrimSpace(xff); ip != "" {
			return ip
		}
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
