package worker

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter paces register portal lookups per Registergericht. The
// portal tolerates roughly 60 requests per hour per client; staying
// below that avoids captchas and IP blocks.
type Limiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	perHour  rate.Limit
}

// NewLimiter creates a Limiter allowing requestsPerHour lookups per
// court. Burst is 1: the portal has no tolerance for request spikes.
func NewLimiter(requestsPerHour int) *Limiter {
	if requestsPerHour <= 0 {
		requestsPerHour = 55
	}

	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		perHour:  rate.Limit(float64(requestsPerHour) / 3600),
	}
}

// Wait blocks until a lookup against the given court is allowed.
func (l *Limiter) Wait(ctx context.Context, court string) error {
	return l.getLimiter(court).Wait(ctx)
}

// Allow reports whether a lookup against the court is allowed right
// now, without waiting.
func (l *Limiter) Allow(court string) bool {
	return l.getLimiter(court).Allow()
}

// getLimiter returns the rate limiter for a court
func (l *Limiter) getLimiter(court string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[court]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := l.limiters[court]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.perHour, 1)
	l.limiters[court] = limiter

	return limiter
}
