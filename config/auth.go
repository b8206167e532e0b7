package config

import "time"

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// TokenSecret is the HMAC secret used to sign and verify identity tokens.
	// Required outside development mode; there is no production fallback.
	TokenSecret string `env:"AUTH_TOKEN_SECRET"`

	// TokenLifetime is how long an issued token stays valid.
	// Expiry is the only invalidation mechanism; there is no revocation list.
	TokenLifetime time.Duration `env:"AUTH_TOKEN_LIFETIME" envDefault:"24h"`

	// DevTokenSecret is the fallback secret used only when IsDev is true and
	// AUTH_TOKEN_SECRET is unset. Never consulted in production mode.
	DevTokenSecret string `env:"AUTH_DEV_TOKEN_SECRET" envDefault:"medidea-dev-secret"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.TokenLifetime <= 0 {
		a.TokenLifetime = 24 * time.Hour
	}
}

// EffectiveSecret returns the signing secret to use, honoring the dev
// fallback only when isDev is true. Returns "" when no usable secret exists.
func (a *AuthConfig) EffectiveSecret(isDev bool) string {
	if a.TokenSecret != "" {
		return a.TokenSecret
	}
	if isDev {
		return a.DevTokenSecret
	}
	return ""
}
