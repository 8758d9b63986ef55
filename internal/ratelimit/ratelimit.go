// Package ratelimit caps how many calls each AI provider may make per day,
// keeping a run within free-tier budgets. A capped provider is skipped like
// an unconfigured one; the extractive fallback still answers.
package ratelimit

import (
	"sync"
	"time"

	"newsfuse/internal/logger"
)

type Limiter struct {
	mu        sync.Mutex
	counts    map[string]int
	limits    map[string]int
	maxTotal  int
	total     int
	resetTime time.Time
}

// New creates a limiter with per-provider limits and an overall cap.
// A limit of 0 means unlimited.
func New(limits map[string]int, maxTotal int) *Limiter {
	l := &Limiter{
		counts:    make(map[string]int),
		limits:    make(map[string]int, len(limits)),
		maxTotal:  maxTotal,
		resetTime: time.Now().Add(24 * time.Hour),
	}
	for name, limit := range limits {
		l.limits[name] = limit
	}
	return l
}

// Allow reports whether the named provider may make another call and, if so,
// records it.
func (l *Limiter) Allow(provider string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkReset()

	if limit := l.limits[provider]; limit > 0 && l.counts[provider] >= limit {
		logger.Warn("provider rate limit reached", "provider", provider, "limit", limit)
		return false
	}

	if l.maxTotal > 0 && l.total >= l.maxTotal {
		logger.Warn("total AI rate limit reached", "limit", l.maxTotal)
		return false
	}

	l.counts[provider]++
	l.total++
	return true
}

// Stats returns a snapshot of per-provider usage.
func (l *Limiter) Stats() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]int, len(l.counts)+1)
	for name, count := range l.counts {
		out[name] = count
	}
	out["total"] = l.total
	return out
}

func (l *Limiter) checkReset() {
	if time.Now().After(l.resetTime) {
		l.counts = make(map[string]int)
		l.total = 0
		l.resetTime = time.Now().Add(24 * time.Hour)
		logger.Info("AI rate limits reset")
	}
}
