package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "agent-battles-gateway/internal/adapter/storage/redis"
	"agent-battles-gateway/pkg/apperror"
	"agent-battles-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the rate limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"read":            {Limit: 120, Window: time.Minute},
		"consent":         {Limit: 30, Window: time.Minute},
		"wallet_connect":  {Limit: 10, Window: time.Minute},
		"wallet_callback": {Limit: 10, Window: time.Minute},
		"wallet_stream":   {Limit: 20, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// A nil store disables limiting.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.Next()
			return
		}

		identifier := extractIdentifier(c)
		key := fmt.Sprintf("%s:%s", identifier, group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		// Always set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys limits by device, falling back to the client IP.
// A device minted for this request says nothing about the caller, so it is
// keyed by IP too.
func extractIdentifier(c *gin.Context) string {
	if id, ok := DeviceID(c); ok && !IsNewDevice(c) {
		return "device:" + id
	}
	return "ip:" + c.ClientIP()
}
