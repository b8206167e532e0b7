package bootstrap

import (
	"errors"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/medidea/medidea-api/config"
	"github.com/medidea/medidea-api/internal/adapters/fsblob"
	"github.com/medidea/medidea-api/internal/adapters/memory"
	redisadapter "github.com/medidea/medidea-api/internal/adapters/redis"
	"github.com/medidea/medidea-api/internal/domain/ratelimit"
	"github.com/medidea/medidea-api/internal/service"
)

// BuildRateLimiter selects the rate store backend and assembles the limiter
// with the configured per-surface policies.
//
// The memory backend keeps counters per process; multi-instance deployments
// should use redis so all instances share one window per caller.
func BuildRateLimiter(
	cfg *config.AppConfig,
	redisClient goredis.UniversalClient,
	logger *slog.Logger,
) (*service.RateLimiter, error) {
	var store ratelimit.Store
	switch cfg.RateLimit.Backend {
	case config.RateLimitBackendRedis:
		if redisClient == nil {
			return nil, errors.New("rate limit backend is redis but no redis client is configured")
		}
		store = redisadapter.NewRateStore(redisClient)
	default:
		store = memory.NewRateStore()
	}

	if logger != nil {
		logger.Info("rate limiter configured",
			"backend", string(cfg.RateLimit.Backend),
			"login_max", cfg.RateLimit.Login.Max,
			"upload_max", cfg.RateLimit.Upload.Max,
			"api_max", cfg.RateLimit.API.Max,
		)
	}

	return service.NewRateLimiter(service.RateLimiterOptions{
		Store:  store,
		Login:  ratelimit.Policy{Max: cfg.RateLimit.Login.Max, Window: cfg.RateLimit.Login.Window},
		Upload: ratelimit.Policy{Max: cfg.RateLimit.Upload.Max, Window: cfg.RateLimit.Upload.Window},
		API:    ratelimit.Policy{Max: cfg.RateLimit.API.Max, Window: cfg.RateLimit.API.Window},
	}), nil
}

// BuildBlobStore creates the filesystem blob store for attachment bytes.
func BuildBlobStore(cfg *config.AppConfig, logger *slog.Logger) (*fsblob.Store, error) {
	store, err := fsblob.NewStore(cfg.Storage.AttachmentsDir)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Info("attachment storage ready", "dir", cfg.Storage.AttachmentsDir)
	}
	return store, nil
}
