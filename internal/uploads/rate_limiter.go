package uploads

import (
	"strings"
	"sync"
	"time"
)

// UnknownClientKey is the bucket shared by every caller whose address cannot be determined.
const UnknownClientKey = "unknown"

type rateWindow struct {
	count int
	start time.Time
}

// RateDecision is the outcome of one admission check.
type RateDecision struct {
	Allowed    bool
	Count      int
	RetryAfter time.Duration
}

// RateLimiter admits a bounded number of submissions per client key per window.
// State lives in process memory only.
type RateLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	clock   func() time.Time
	windows map[string]*rateWindow
}

// NewRateLimiter constructs a limiter. A nil clock uses time.Now.
func NewRateLimiter(max int, window time.Duration, clock func() time.Time) *RateLimiter {
	if clock == nil {
		clock = time.Now
	}
	return &RateLimiter{
		max:     max,
		window:  window,
		clock:   clock,
		windows: make(map[string]*rateWindow),
	}
}

// Allow counts an attempt for the key. Rejected attempts still count.
func (l *RateLimiter) Allow(key string) RateDecision {
	key = normalizeClientKey(key)
	now := l.clock()

	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.windows[key]
	if !ok {
		state = &rateWindow{start: now}
		l.windows[key] = state
	}
	if now.Sub(state.start) > l.window {
		state.count = 1
		state.start = now
	} else {
		state.count++
	}

	if state.count > l.max {
		retryAfter := state.start.Add(l.window).Sub(now)
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		return RateDecision{Allowed: false, Count: state.count, RetryAfter: retryAfter}
	}
	return RateDecision{Allowed: true, Count: state.count}
}

// Prune drops windows that have already elapsed and reports how many were removed.
func (l *RateLimiter) Prune() int {
	now := l.clock()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, state := range l.windows {
		if now.Sub(state.start) > l.window {
			delete(l.windows, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked client keys.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

func normalizeClientKey(key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return UnknownClientKey
	}
	return trimmed
}
