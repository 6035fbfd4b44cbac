package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(maxFailures int, window, block time.Duration) (*FailureLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	l := NewFailureLimiter(maxFailures, window, block)
	l.now = clock.Now
	return l, clock
}

func TestFailureLimiter_NewClientAllowed(t *testing.T) {
	l, _ := newTestLimiter(3, time.Minute, 5*time.Minute)

	allowed, remaining := l.Allowed("10.0.0.1")

	assert.True(t, allowed)
	assert.Zero(t, remaining)
}

func TestFailureLimiter_BlocksAfterMaxFailures(t *testing.T) {
	l, clock := newTestLimiter(3, time.Minute, 5*time.Minute)

	assert.Equal(t, 1, l.Failure("10.0.0.1"))
	assert.Equal(t, 2, l.Failure("10.0.0.1"))
	allowed, _ := l.Allowed("10.0.0.1")
	assert.True(t, allowed)

	assert.Equal(t, 3, l.Failure("10.0.0.1"))
	clock.Advance(time.Minute)

	allowed, remaining := l.Allowed("10.0.0.1")
	assert.False(t, allowed)
	assert.Equal(t, 4*time.Minute, remaining)

	other, _ := l.Allowed("10.0.0.2")
	assert.True(t, other, "clients are tracked separately")
}

func TestFailureLimiter_BlockExpires(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute, 5*time.Minute)

	l.Failure("c")
	l.Failure("c")
	clock.Advance(5*time.Minute + time.Second)

	allowed, _ := l.Allowed("c")
	assert.True(t, allowed)
}

func TestFailureLimiter_WindowResetsCount(t *testing.T) {
	l, clock := newTestLimiter(3, time.Minute, 5*time.Minute)

	l.Failure("c")
	l.Failure("c")
	clock.Advance(2 * time.Minute)

	assert.Equal(t, 1, l.Failure("c"))
	allowed, _ := l.Allowed("c")
	assert.True(t, allowed)
}

func TestFailureLimiter_SuccessClearsFailures(t *testing.T) {
	l, _ := newTestLimiter(3, time.Minute, 5*time.Minute)

	l.Failure("c")
	l.Failure("c")
	l.Success("c")

	assert.Equal(t, 1, l.Failure("c"))
	l.Success("never-seen")
}

func TestFailureLimiter_SweepRemovesOldRecords(t *testing.T) {
	l, clock := newTestLimiter(5, time.Minute, time.Minute)

	l.Failure("old")
	clock.Advance(3 * time.Minute)
	l.Failure("fresh")

	l.sweep()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.failures, "old")
	assert.Contains(t, l.failures, "fresh")
}

func TestFailureLimiter_ConcurrentAccess(t *testing.T) {
	l := NewFailureLimiter(1000, time.Minute, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Failure("shared")
			l.Allowed("shared")
		}()
	}
	wg.Wait()

	assert.Equal(t, 51, l.Failure("shared"))
}
