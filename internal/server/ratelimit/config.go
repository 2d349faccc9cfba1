package ratelimit

import (
	"time"

	"github.com/themohitbharti/joblens/internal/config"
)

// Default settings used when a Limiter is built without configuration.
const (
	DefaultLimit           = 120
	DefaultWindow          = time.Minute
	DefaultCleanupInterval = 5 * time.Minute
	idleBucketTTL          = time.Hour
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Limit           int           // Requests per Window per client and route
	Window          time.Duration // Refill period for Limit tokens
	Burst           int           // Bucket capacity, defaults to Limit if 0
	CleanupInterval time.Duration
	Whitelist       map[string]bool
}

// FromSettings converts the server's rate limit settings into a limiter Config.
func FromSettings(s config.RateLimitConfig) *Config {
	c := &Config{
		Enabled:         s.Enabled,
		Limit:           s.Limit,
		Window:          s.Window,
		Burst:           s.Burst,
		CleanupInterval: DefaultCleanupInterval,
		Whitelist:       make(map[string]bool, len(s.Whitelist)),
	}
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	if c.Window <= 0 {
		c.Window = DefaultWindow
	}
	for _, ip := range s.Whitelist {
		c.Whitelist[ip] = true
	}
	return c
}

func (c *Config) capacity() int {
	if c.Burst > 0 {
		return c.Burst
	}
	return c.Limit
}

func (c *Config) refillRate() float64 {
	return float64(c.Limit) / c.Window.Seconds()
}
