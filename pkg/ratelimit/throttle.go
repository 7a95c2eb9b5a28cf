package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	// DefaultMaxClients bounds how many client limiters are tracked at once.
	DefaultMaxClients = 1000
	minLimiterTTL     = 5 * time.Minute
)

// Throttle rejects calls from the same key that arrive within window of the
// previous accepted call. Limiters are kept in a bounded, expiring LRU.
type Throttle struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
}

// NewThrottle creates a Throttle. maxClients <= 0 uses DefaultMaxClients.
func NewThrottle(window time.Duration, maxClients int) *Throttle {
	if maxClients <= 0 {
		maxClients = DefaultMaxClients
	}
	return &Throttle{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, max(minLimiterTTL, 2*window)),
		limit:    rate.Every(window),
	}
}

// Allow reports whether a call for key may proceed now.
func (t *Throttle) Allow(key string) bool {
	t.mu.Lock()
	limiter, ok := t.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(t.limit, 1)
		t.limiters.Add(key, limiter)
	}
	t.mu.Unlock()

	return limiter.Allow()
}

// Len returns the number of tracked keys.
func (t *Throttle) Len() int {
	return t.limiters.Len()
}
