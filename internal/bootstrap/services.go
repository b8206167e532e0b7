package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medidea/medidea-api/config"
	"github.com/medidea/medidea-api/internal/adapters/fsblob"
	"github.com/medidea/medidea-api/internal/adapters/jwtauth"
	"github.com/medidea/medidea-api/internal/data"
	"github.com/medidea/medidea-api/internal/service"
)

const shutdownWaitTimeout = 10 * time.Second

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth        *service.AuthService
	Users       *service.UserService
	Customers   *service.CustomerService
	Equipment   *service.EquipmentService
	Technicians *service.TechnicianService
	Activities  *service.ActivityService
	SpareParts  *service.SparePartService
	Attachments *service.AttachmentService

	Tokens    *jwtauth.Authority
	Limiter   *service.RateLimiter
	BlobStore *fsblob.Store
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	DB             *sql.DB
	UserRepo       *data.UserRepo
	CustomerRepo   *data.CustomerRepo
	EquipmentRepo  *data.EquipmentRepo
	TechnicianRepo *data.TechnicianRepo
	ActivityRepo   *data.ActivityRepo
	SparePartRepo  *data.SparePartRepo
	AttachmentRepo *data.AttachmentRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB) *serviceRepositories {
	return &serviceRepositories{
		DB:             db,
		UserRepo:       data.NewUserRepo(db),
		CustomerRepo:   data.NewCustomerRepo(db),
		EquipmentRepo:  data.NewEquipmentRepo(db),
		TechnicianRepo: data.NewTechnicianRepo(db),
		ActivityRepo:   data.NewActivityRepo(db),
		SparePartRepo:  data.NewSparePartRepo(db),
		AttachmentRepo: data.NewAttachmentRepo(db),
	}
}

// NewServices wires repositories, adapters, and services together.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tokens, err := BuildTokenAuthority(deps.Config)
	if err != nil {
		return ServiceContainer{}, err
	}

	limiter, err := BuildRateLimiter(deps.Config, deps.RedisClient, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	blobs, err := BuildBlobStore(deps.Config, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	repos := buildRepositories(deps.DB)

	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Users:  repos.UserRepo,
			Tokens: tokens,
		}),
		Users:       service.NewUserService(service.UserServiceOptions{Users: repos.UserRepo}),
		Customers:   service.NewCustomerService(service.CustomerServiceOptions{Customers: repos.CustomerRepo}),
		Equipment:   service.NewEquipmentService(service.EquipmentServiceOptions{Equipment: repos.EquipmentRepo}),
		Technicians: service.NewTechnicianService(service.TechnicianServiceOptions{Technicians: repos.TechnicianRepo}),
		Activities:  service.NewActivityService(service.ActivityServiceOptions{Activities: repos.ActivityRepo}),
		SpareParts:  service.NewSparePartService(service.SparePartServiceOptions{Parts: repos.SparePartRepo}),
		Attachments: service.NewAttachmentService(service.AttachmentServiceOptions{
			Attachments: repos.AttachmentRepo,
			Activities:  repos.ActivityRepo,
			Blobs:       blobs,
		}),
		Tokens:    tokens,
		Limiter:   limiter,
		BlobStore: blobs,
	}, nil
}

// ServiceOrchestrationConfig groups everything needed to run the server.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunServicesWithShutdown starts the HTTP server and blocks until a shutdown
// signal arrives or the server fails to start.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWaitTimeout)
	defer cancel()

	if err := ShutdownHTTPServer(ShutdownConfig{
		Context: shutdownCtx,
		Server:  server,
		Logger:  logger,
	}); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
