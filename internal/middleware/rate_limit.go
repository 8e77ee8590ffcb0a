package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/api/httpx"
)

// bucket refills continuously at rate tokens per second up to burst.
type bucket struct {
	mu     sync.Mutex
	tokens float64
	last   time.Time
	rate   float64
	burst  float64
}

func newBucket(rps int, now time.Time) *bucket {
	return &bucket{tokens: float64(rps), last: now, rate: float64(rps), burst: float64(rps)}
}

func (b *bucket) take(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
		b.tokens += elapsed * b.rate
		if b.tokens > b.burst {
			b.tokens = b.burst
		}
		b.last = now
	}
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// RateLimit shares one bucket across every request it wraps. Each call gets
// its own bucket, so routes that stream (GPS fixes) can be limited apart
// from the screens. rps <= 0 disables the limit.
func RateLimit(rps int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	b := newBucket(rps, time.Now())
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !b.take(time.Now()) {
				w.Header().Set("Retry-After", "1") // a token is back within a second
				httpx.WriteError(w, http.StatusTooManyRequests, "rate_limited", "too many requests", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
