// Package limiter implements sliding-window request admission control,
// keyed by an opaque caller id.
package limiter

import (
	"sync"
	"time"
)

const (
	// DefaultThreshold is the number of requests admitted per caller per window.
	DefaultThreshold = 10
	// DefaultWindow is the trailing interval the threshold applies to.
	DefaultWindow = 60 * time.Second
)

// RateLimiter admits up to threshold requests per caller within the trailing
// window. Timestamps older than the window are pruned lazily on each check.
// Caller keys are retained for the life of the process: evicting a caller
// that is still active would reset its window and break the admission
// invariant, so no eviction policy is applied.
type RateLimiter struct {
	mu        sync.Mutex
	windows   map[string][]time.Time
	threshold int
	window    time.Duration

	now func() time.Time
}

// NewRateLimiter creates a limiter with the default threshold and window.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(DefaultThreshold, DefaultWindow)
}

// NewRateLimiterWithConfig creates a limiter with explicit tuning.
func NewRateLimiterWithConfig(threshold int, window time.Duration) *RateLimiter {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &RateLimiter{
		windows:   make(map[string][]time.Time),
		threshold: threshold,
		window:    window,
		now:       time.Now,
	}
}

// Admit reports whether the caller may proceed. A rejected attempt is not
// recorded, so it never extends the caller's window. The check-then-append
// is atomic per call.
func (l *RateLimiter) Admit(callerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.windows[callerID][:0]
	for _, ts := range l.windows[callerID] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.threshold {
		l.windows[callerID] = recent
		return false
	}

	l.windows[callerID] = append(recent, now)
	return true
}

// Callers returns the number of caller keys currently tracked.
func (l *RateLimiter) Callers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
