package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Config holds rate limiting configuration for one policy.
type Config struct {
	TokensPerInterval int           // Requests allowed per key per window
	Interval          time.Duration // Fixed window length
	MaxKeys           int           // Upper bound on tracked keys
}

// DefaultMaxKeys bounds limiter memory regardless of distinct-client churn.
const DefaultMaxKeys = 10000

// Result describes a single rate-limit decision.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	Reset      int64 // epoch ms when the current window ends
	RetryAfter int   // seconds until retry is worthwhile; 0 when allowed
}

type entry struct {
	count int
	reset time.Time
}

// Limiter is a keyed fixed-window counter. A key's first request in a stale
// or absent window resets the count to 1 and opens a new window; subsequent
// requests increment the count until TokensPerInterval is reached, after
// which requests are denied until the window's reset passes.
//
// Storage is a bounded LRU cache with TTL equal to the window, so idle keys
// are evicted automatically. Under high key cardinality the LRU may evict a
// live window early, which resets that client's budget; this is a soft
// guarantee, accepted by design of the cache bound.
type Limiter struct {
	mu       sync.Mutex
	cache    *expirable.LRU[string, *entry]
	limit    int
	interval time.Duration
}

// New creates a limiter for a single policy. Limiters are plain values meant
// to be constructed at startup and injected; tests create their own.
func New(cfg Config) *Limiter {
	maxKeys := cfg.MaxKeys
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}
	return &Limiter{
		cache:    expirable.NewLRU[string, *entry](maxKeys, nil, cfg.Interval),
		limit:    cfg.TokensPerInterval,
		interval: cfg.Interval,
	}
}

// Check atomically tests-and-increments the counter for key.
// The whole decision runs under one lock so two concurrent requests can
// never both observe the last free slot.
func (l *Limiter) Check(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	e, ok := l.cache.Get(key)
	if !ok || !now.Before(e.reset) {
		e = &entry{count: 1, reset: now.Add(l.interval)}
		l.cache.Add(key, e)
		return l.result(e, true, now)
	}

	if e.count >= l.limit {
		return l.result(e, false, now)
	}

	e.count++
	return l.result(e, true, now)
}

// Status returns the current view for key without incrementing.
// For a key with no active window it reports a full budget and a
// prospective reset one interval from now.
func (l *Limiter) Status(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	e, ok := l.cache.Get(key)
	if !ok || !now.Before(e.reset) {
		return Result{
			Allowed:   true,
			Limit:     l.limit,
			Remaining: l.limit,
			Reset:     now.Add(l.interval).UnixMilli(),
		}
	}
	return l.result(e, e.count < l.limit, now)
}

// Reset clears the window for key. Administrative and testing use.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Remove(key)
}

// Interval returns the policy's window length.
func (l *Limiter) Interval() time.Duration {
	return l.interval
}

func (l *Limiter) result(e *entry, allowed bool, now time.Time) Result {
	remaining := l.limit - e.count
	if remaining < 0 {
		remaining = 0
	}

	retryAfter := 0
	if !allowed {
		wait := e.reset.Sub(now)
		retryAfter = int(wait / time.Second)
		if wait%time.Second != 0 || retryAfter == 0 {
			retryAfter++
		}
	}

	return Result{
		Allowed:    allowed,
		Limit:      l.limit,
		Remaining:  remaining,
		Reset:      e.reset.UnixMilli(),
		RetryAfter: retryAfter,
	}
}
