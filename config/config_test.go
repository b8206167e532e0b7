package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitConfig_SanitizeDefaults(t *testing.T) {
	var cfg RateLimitConfig
	cfg.Sanitize()

	assert.Equal(t, RateLimitBackendMemory, cfg.Backend)
	assert.Equal(t, 5, cfg.Login.Max)
	assert.Equal(t, 15*time.Minute, cfg.Login.Window)
	assert.Equal(t, 10, cfg.Upload.Max)
	assert.Equal(t, 60*time.Minute, cfg.Upload.Window)
	assert.Equal(t, 100, cfg.API.Max)
	assert.Equal(t, time.Minute, cfg.API.Window)
}

func TestRateLimitConfig_SanitizeKeepsTunedValues(t *testing.T) {
	cfg := RateLimitConfig{
		Backend: RateLimitBackendRedis,
		Login:   RatePolicyConfig{Max: 3, Window: 5 * time.Minute},
	}
	cfg.Sanitize()

	assert.Equal(t, RateLimitBackendRedis, cfg.Backend)
	assert.Equal(t, 3, cfg.Login.Max)
	assert.Equal(t, 5*time.Minute, cfg.Login.Window)
	// Unset policies still receive their presets.
	assert.Equal(t, 10, cfg.Upload.Max)
}

func TestAuthConfig_EffectiveSecret(t *testing.T) {
	cfg := AuthConfig{DevTokenSecret: "dev-secret"}

	assert.Empty(t, cfg.EffectiveSecret(false), "no production fallback")
	assert.Equal(t, "dev-secret", cfg.EffectiveSecret(true))

	cfg.TokenSecret = "real-secret"
	assert.Equal(t, "real-secret", cfg.EffectiveSecret(false))
	assert.Equal(t, "real-secret", cfg.EffectiveSecret(true))
}

func TestAuthConfig_SanitizeLifetime(t *testing.T) {
	cfg := AuthConfig{TokenLifetime: -time.Hour}
	cfg.Sanitize()
	assert.Equal(t, 24*time.Hour, cfg.TokenLifetime)
}
