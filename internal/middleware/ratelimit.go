package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window per-key counter. Windows are kept in memory;
// stale entries are dropped on the fly, so a single instance stays bounded by
// the number of distinct client IPs seen inside one window.
type RateLimiter struct {
	mu         sync.Mutex
	max        int
	expiration time.Duration
	windows    map[string]*window
	now        func() time.Time
}

type window struct {
	count   int
	resetAt time.Time
}

func NewRateLimiter(max int, expiration time.Duration) *RateLimiter {
	return &RateLimiter{
		max:        max,
		expiration: expiration,
		windows:    make(map[string]*window),
		now:        time.Now,
	}
}

// Allow records a hit for key and reports whether it is within the limit.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		l.windows[key] = &window{count: 1, resetAt: now.Add(l.expiration)}
		l.sweep(now)
		return true
	}

	w.count++
	return w.count <= l.max
}

func (l *RateLimiter) sweep(now time.Time) {
	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
		}
	}
}

// Middleware keys the limiter by client IP and answers 429 once the window is full.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "too many requests, try again later",
			})
			return
		}
		c.Next()
	}
}
