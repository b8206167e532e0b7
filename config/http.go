package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the base URL of the application (e.g., "https://medidea.example.com").
	// Used for generating absolute URLs for attachment downloads.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// TrustProxyHeaders controls whether X-Forwarded-For is honored when
	// resolving the client IP for rate limiting. Enable only behind a
	// trusted reverse proxy.
	TrustProxyHeaders bool `env:"HTTP_TRUST_PROXY_HEADERS" envDefault:"false"`
}
