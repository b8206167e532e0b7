package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/medidea/medidea-api/config"
	"github.com/medidea/medidea-api/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logStartupInfo(ctx, logger, &cfg)

	if err = bootstrap.ValidateConfig(&cfg); err != nil {
		return err
	}

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cfg.Postgres,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close database failed", "error", cerr)
		}
	}()

	// Redis is only dialed when the rate limiter needs it.
	services := bootstrap.ServiceContainer{}
	if cfg.RateLimit.Backend == config.RateLimitBackendRedis {
		redisClient, rerr := bootstrap.ConnectRedis(bootstrap.DatabaseConfig{
			RedisConfig: cfg.Redis,
			Logger:      logger,
		})
		if rerr != nil {
			return fmt.Errorf("connect redis: %w", rerr)
		}
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()

		services, err = bootstrap.NewServices(&bootstrap.ServiceDeps{
			Config:      &cfg,
			DB:          db,
			RedisClient: redisClient,
			Logger:      logger,
		})
	} else {
		services, err = bootstrap.NewServices(&bootstrap.ServiceDeps{
			Config: &cfg,
			DB:     db,
			Logger: logger,
		})
	}
	if err != nil {
		return err
	}

	if cfg.Postgres.RunMigrationsOnStart {
		if err = bootstrap.RunMigrations(ctx, db, logger); err != nil {
			return err
		}
	} else {
		logger.InfoContext(ctx, "skipping database migrations on startup", "reason", "disabled via config")
	}

	return bootstrap.RunServicesWithShutdown(&bootstrap.ServiceOrchestrationConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting medidea api",
		"addr", cfg.HTTP.Addr,
		"db_host", cfg.Postgres.Host,
		"db_port", cfg.Postgres.Port,
		"db_name", cfg.Postgres.Name,
		"rate_limit_backend", string(cfg.RateLimit.Backend),
		"dev_mode", cfg.IsDev)
}
