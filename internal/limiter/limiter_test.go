package limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time { return c.current }

func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func newTestLimiter(threshold int, window time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{current: time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)}
	l := NewRateLimiterWithConfig(threshold, window)
	l.now = clock.now
	return l, clock
}

func TestAdmit_UpToThreshold(t *testing.T) {
	l, _ := newTestLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Admit("caller-a"), "request %d should be admitted", i+1)
	}
	assert.False(t, l.Admit("caller-a"))
}

func TestAdmit_RejectionNotRecorded(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)

	assert.True(t, l.Admit("caller-a"))
	assert.True(t, l.Admit("caller-a"))

	// Hammering while limited must not extend the window.
	for i := 0; i < 10; i++ {
		clock.advance(time.Second)
		assert.False(t, l.Admit("caller-a"))
	}

	// 61s after the first admit, one slot frees up.
	clock.advance(51 * time.Second)
	assert.True(t, l.Admit("caller-a"))
}

func TestAdmit_WindowSlides(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)

	assert.True(t, l.Admit("caller-a"))
	clock.advance(30 * time.Second)
	assert.True(t, l.Admit("caller-a"))
	assert.False(t, l.Admit("caller-a"))

	// First timestamp ages out, second remains.
	clock.advance(31 * time.Second)
	assert.True(t, l.Admit("caller-a"))
	assert.False(t, l.Admit("caller-a"))
}

func TestAdmit_CallersIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute)

	assert.True(t, l.Admit("caller-a"))
	assert.False(t, l.Admit("caller-a"))
	assert.True(t, l.Admit("caller-b"))

	assert.Equal(t, 2, l.Callers())
}

func TestNewRateLimiterWithConfig_Defaults(t *testing.T) {
	l := NewRateLimiterWithConfig(0, 0)
	assert.Equal(t, DefaultThreshold, l.threshold)
	assert.Equal(t, DefaultWindow, l.window)
}
