package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiterConfig struct {
	RequestsPerSecond int
	Burst             int
	CleanupInterval   time.Duration
	TTL               time.Duration
}

// visitorMap tracks one limiter per client IP. Each middleware instance
// owns its own map so separate limiters never share buckets.
type visitorMap struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

func (m *visitorMap) get(ip string, rps int, burst int) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, exists := m.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(rps), burst)
		m.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (m *visitorMap) cleanup(ttl time.Duration, interval time.Duration) {
	for {
		time.Sleep(interval)
		m.mu.Lock()
		for ip, v := range m.visitors {
			if time.Since(v.lastSeen) > ttl {
				delete(m.visitors, ip)
			}
		}
		m.mu.Unlock()
	}
}

func RateLimiterMiddleware(config RateLimiterConfig) gin.HandlerFunc {
	if config.CleanupInterval == 0 {
		config.CleanupInterval = time.Minute
	}
	if config.TTL == 0 {
		config.TTL = 3 * time.Minute
	}

	m := &visitorMap{visitors: make(map[string]*visitor)}

	go m.cleanup(config.TTL, config.CleanupInterval)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := m.get(ip, config.RequestsPerSecond, config.Burst)

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
