package config

import "time"

// RateLimitBackend selects the store backing the rate limiter.
type RateLimitBackend string

const (
	// RateLimitBackendMemory keeps windows in process memory. Counters are
	// not shared across instances; suitable for single-process deployments.
	RateLimitBackendMemory RateLimitBackend = "memory"
	// RateLimitBackendRedis keeps windows in Redis sorted sets, shared
	// across instances.
	RateLimitBackendRedis RateLimitBackend = "redis"
)

// RatePolicyConfig is one named quota: at most Max requests per Window.
type RatePolicyConfig struct {
	Max    int           `env:"MAX"`
	Window time.Duration `env:"WINDOW"`
}

// RateLimitConfig groups the rate limiter backend and the named policies.
// The presets mirror the product defaults: login 5/15m, upload 10/60m,
// general API 100/1m. All of them are tunable via environment.
type RateLimitConfig struct {
	Backend RateLimitBackend `env:"RATE_LIMIT_BACKEND" envDefault:"memory"`

	Login  RatePolicyConfig `envPrefix:"RATE_LIMIT_LOGIN_"`
	Upload RatePolicyConfig `envPrefix:"RATE_LIMIT_UPLOAD_"`
	API    RatePolicyConfig `envPrefix:"RATE_LIMIT_API_"`
}

// Sanitize fills in preset defaults for unset or nonsensical policy values.
func (c *RateLimitConfig) Sanitize() {
	if c.Backend != RateLimitBackendRedis {
		c.Backend = RateLimitBackendMemory
	}
	sanitizePolicy(&c.Login, 5, 15*time.Minute)
	sanitizePolicy(&c.Upload, 10, 60*time.Minute)
	sanitizePolicy(&c.API, 100, time.Minute)
}

func sanitizePolicy(p *RatePolicyConfig, maxDefault int, windowDefault time.Duration) {
	if p.Max <= 0 {
		p.Max = maxDefault
	}
	if p.Window <= 0 {
		p.Window = windowDefault
	}
}
