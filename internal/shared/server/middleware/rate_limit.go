package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Veerenstael/QuickScan/internal/shared/server/respond"
)

// Limiter tracks one token bucket per client IP. Processing a submission is
// expensive (a full report render plus a mail round trip), so the submit
// route is protected against a single client flooding it.
type Limiter struct {
	rate  float64
	burst int
	now   func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewLimiter builds a limiter refilling rate tokens per second up to burst.
// now may be nil; it exists so tests can drive the clock.
func NewLimiter(rate float64, burst int, now func() time.Time) *Limiter {
	if now == nil {
		now = time.Now
	}
	return &Limiter{
		rate:    rate,
		burst:   burst,
		now:     now,
		buckets: make(map[string]*bucket),
	}
}

// Allow reports whether the client may proceed and, when it may not, how long
// to wait for the next token. A limiter with a non-positive rate or burst
// allows everything.
func (l *Limiter) Allow(client string) (bool, time.Duration) {
	if l.rate <= 0 || l.burst <= 0 {
		return true, 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[client]
	if !ok {
		b = &bucket{tokens: float64(l.burst), last: now}
		l.buckets[client] = b
	}

	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens = math.Min(float64(l.burst), b.tokens+elapsed*l.rate)
		b.last = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	wait := time.Duration((1 - b.tokens) / l.rate * float64(time.Second))
	return false, wait
}

// RateLimit rejects requests over the limiter's budget with 429 and a
// Retry-After header. A nil limiter is a no-op.
func RateLimit(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}
		ok, wait := l.Allow(c.ClientIP())
		if !ok {
			seconds := int(math.Ceil(wait.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			respond.Error(c, http.StatusTooManyRequests, "too many requests")
			return
		}
		c.Next()
	}
}
