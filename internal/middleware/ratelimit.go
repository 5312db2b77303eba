package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"study-assistant/pkg/response"
)

// sessionRateLimiter keeps one token bucket per session, with idle
// buckets expiring out of the LRU automatically.
type sessionRateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newSessionRateLimiter(requestsPerMin int) *sessionRateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &sessionRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *sessionRateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles model-dispatch routes per session. Requires the
// Session middleware to have run first.
func (m Middleware) RateLimit(requestsPerMin int) gin.HandlerFunc {
	rl := newSessionRateLimiter(requestsPerMin)

	return func(c *gin.Context) {
		key := c.ClientIP()
		if s, ok := GetSession(c); ok {
			key = s.ID
		}

		if !rl.allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}
