package infrastructure

import (
	"sync"
	"time"
)

// RateLimiter enforces at most limit calls per rolling window per key.
type RateLimiter struct {
	requests map[string][]time.Time
	window   time.Duration
	limit    int
	mutex    sync.Mutex
}

func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		window:   window,
		limit:    limit,
	}

	go rl.cleanupStaleEntries()
	return rl
}

// Allow records the call and reports whether it fits the rolling window.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	valid := rl.pruneLocked(key, now)

	if len(valid) < rl.limit {
		rl.requests[key] = append(valid, now)
		return true
	}

	rl.requests[key] = valid
	return false
}

// RetryAfter returns how long until the oldest in-window call slides out and
// a new call would be admitted. Zero when the key is under its limit.
func (rl *RateLimiter) RetryAfter(key string) time.Duration {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	valid := rl.pruneLocked(key, now)
	rl.requests[key] = valid

	if len(valid) < rl.limit {
		return 0
	}

	wait := valid[0].Add(rl.window).Sub(now)
	if wait < 0 {
		return 0
	}
	return wait
}

// pruneLocked drops timestamps outside the window. Caller holds the mutex.
func (rl *RateLimiter) pruneLocked(key string, now time.Time) []time.Time {
	windowStart := now.Add(-rl.window)

	var valid []time.Time
	for _, reqTime := range rl.requests[key] {
		if reqTime.After(windowStart) {
			valid = append(valid, reqTime)
		}
	}
	return valid
}

func (rl *RateLimiter) cleanupStaleEntries() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		now := time.Now()
		for key := range rl.requests {
			valid := rl.pruneLocked(key, now)
			if len(valid) == 0 {
				delete(rl.requests, key)
			} else {
				rl.requests[key] = valid
			}
		}
		rl.mutex.Unlock()
	}
}
