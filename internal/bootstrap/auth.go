package bootstrap

import (
	"fmt"

	"github.com/medidea/medidea-api/config"
	"github.com/medidea/medidea-api/internal/adapters/jwtauth"
)

// BuildTokenAuthority creates the HMAC token authority from configuration.
// The dev fallback secret is only honored in development mode.
func BuildTokenAuthority(cfg *config.AppConfig) (*jwtauth.Authority, error) {
	secret := cfg.Auth.EffectiveSecret(cfg.IsDev)
	authority, err := jwtauth.NewAuthority(jwtauth.Config{
		Secret:   secret,
		Lifetime: cfg.Auth.TokenLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("build token authority: %w", err)
	}
	return authority, nil
}
