// Package ratelimit provides a minimum-interval request limiter. Both data
// sources are polite scraping targets, so requests are spaced by a fixed
// interval rather than a token bucket.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter enforces a minimum interval between requests by sleeping the
// remainder of the window since the last request. Safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// New creates a limiter with the given minimum interval. A zero or negative
// interval disables waiting.
func New(interval time.Duration) *Limiter {
	return &Limiter{interval: interval}
}

// Wait blocks until the minimum interval since the previous request has
// elapsed, then records the current time as the last request.
func (l *Limiter) Wait() {
	if l == nil || l.interval <= 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.last.IsZero() {
		if remaining := l.interval - time.Since(l.last); remaining > 0 {
			time.Sleep(remaining)
		}
	}
	l.last = time.Now()
}
