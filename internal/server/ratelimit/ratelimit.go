// Package ratelimit provides per-client token bucket rate limiting for the API.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows capacity requests at once and refills at refillRate
// tokens per second.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64
	tokens     float64
	lastRefill time.Time
}

func newTokenBucket(capacity int, refillRate float64, now time.Time) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
	}
}

// take refills the bucket up to now and consumes one token if available. It
// returns whether the token was taken, the whole tokens left and the time the
// bucket will be full again.
func (tb *tokenBucket) take(now time.Time) (bool, int, time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	if elapsed := now.Sub(tb.lastRefill); elapsed > 0 {
		tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
		tb.lastRefill = now
	}

	allowed := tb.tokens >= 1
	if allowed {
		tb.tokens--
	}

	reset := now
	if missing := float64(tb.capacity) - tb.tokens; missing > 0 {
		reset = now.Add(time.Duration(missing / tb.refillRate * float64(time.Second)))
	}
	return allowed, int(tb.tokens), reset
}

// nextToken returns how long until at least one token is available.
func (tb *tokenBucket) nextToken() time.Duration {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	if tb.tokens >= 1 {
		return 0
	}
	return time.Duration((1 - tb.tokens) / tb.refillRate * float64(time.Second))
}

// Info describes the rate limit state after a request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter tracks one token bucket per client and route.
type Limiter struct {
	config *Config
	now    func() time.Time

	mu         sync.Mutex
	buckets    map[string]*tokenBucket
	lastAccess map[string]time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

// NewLimiter creates a limiter. A nil config enables limiting with the
// package defaults. A background sweep of idle buckets runs until Stop.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			Limit:           DefaultLimit,
			Window:          DefaultWindow,
			CleanupInterval: DefaultCleanupInterval,
		}
	}

	l := &Limiter{
		config:     config,
		now:        time.Now,
		buckets:    make(map[string]*tokenBucket),
		lastAccess: make(map[string]time.Time),
		stop:       make(chan struct{}),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		go l.sweep(config.CleanupInterval)
	}
	return l
}

// Allow records a request from clientID on route and reports whether it may
// proceed.
func (l *Limiter) Allow(clientID string, route Route) (bool, Info) {
	if !l.config.Enabled || route == RouteExempt || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}

	now := l.now()
	bucket := l.bucket(clientID+":"+string(route), now)

	allowed, remaining, reset := bucket.take(now)
	info := Info{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		info.RetryAfter = bucket.nextToken()
	}
	return allowed, info
}

func (l *Limiter) bucket(key string, now time.Time) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastAccess[key] = now
	if b, ok := l.buckets[key]; ok {
		return b
	}
	b := newTokenBucket(l.config.capacity(), l.config.refillRate(), now)
	l.buckets[key] = b
	return b
}

func (l *Limiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle(l.now().Add(-idleBucketTTL))
		case <-l.stop:
			return
		}
	}
}

// evictIdle drops buckets not used since cutoff.
func (l *Limiter) evictIdle(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
			evicted++
		}
	}
	return evicted
}

// Stop ends the background sweep. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
