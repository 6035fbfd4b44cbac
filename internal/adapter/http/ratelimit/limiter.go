package ratelimit

import (
	"sync"
	"time"
)

type failureRecord struct {
	count        int
	lastFailure  time.Time
	blockedUntil time.Time
}

// FailureLimiter blocks a client after too many failed authentications
// within a window. Successful requests are never counted.
type FailureLimiter struct {
	mu          sync.Mutex
	failures    map[string]*failureRecord
	maxFailures int
	window      time.Duration
	block       time.Duration
	now         func() time.Time
}

func NewFailureLimiter(maxFailures int, window, block time.Duration) *FailureLimiter {
	l := &FailureLimiter{
		failures:    make(map[string]*failureRecord),
		maxFailures: maxFailures,
		window:      window,
		block:       block,
		now:         time.Now,
	}

	go l.cleanup()

	return l
}

// Allowed reports whether clientID may try again, and if not, for how long
// it stays blocked.
func (l *FailureLimiter) Allowed(clientID string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.failures[clientID]
	if !ok {
		return true, 0
	}
	if now := l.now(); now.Before(record.blockedUntil) {
		return false, record.blockedUntil.Sub(now)
	}
	return true, 0
}

// Failure records a failed attempt and returns the number of failures in
// the current window.
func (l *FailureLimiter) Failure(clientID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	record, ok := l.failures[clientID]
	if !ok {
		record = &failureRecord{}
		l.failures[clientID] = record
	}
	if now.Sub(record.lastFailure) > l.window {
		record.count = 0
	}

	record.count++
	record.lastFailure = now
	if record.count >= l.maxFailures {
		record.blockedUntil = now.Add(l.block)
	}
	return record.count
}

func (l *FailureLimiter) Success(clientID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.failures, clientID)
}

func (l *FailureLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.sweep()
	}
}

func (l *FailureLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for clientID, record := range l.failures {
		if now.Sub(record.lastFailure) > l.window*2 && now.After(record.blockedUntil) {
			delete(l.failures, clientID)
		}
	}
}
