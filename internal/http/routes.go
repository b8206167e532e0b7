package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/medidea/medidea-api/internal/domain/auth"
	"github.com/medidea/medidea-api/internal/ports"
	"github.com/medidea/medidea-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth        *service.AuthService
	Users       *service.UserService
	Customers   *service.CustomerService
	Equipment   *service.EquipmentService
	Technicians *service.TechnicianService
	Activities  *service.ActivityService
	SpareParts  *service.SparePartService
	Attachments *service.AttachmentService

	Tokens  ports.TokenAuthority
	Limiter *service.RateLimiter

	// Configuration
	TrustProxyHeaders bool
	MaxUploadBytes    int64
	Logger            *slog.Logger
}

// NewRouter creates and configures the HTTP router. All /api routes except
// login require a valid bearer token; account administration additionally
// requires the admin role.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	// The API limiter runs inside the auth middleware so authenticated
	// requests are counted per user, not per address.
	apiLimit := APIRateLimit(services.Limiter, services.TrustProxyHeaders)
	requireAuth := chain(RequireAuth(services.Tokens), apiLimit)
	adminOnly := chain(RequireRole(services.Tokens, domainauth.RoleAdmin), apiLimit)

	authHandlers := &AuthHandlers{
		Svc:        services.Auth,
		Limiter:    services.Limiter,
		TrustProxy: services.TrustProxyHeaders,
		Logger:     services.Logger,
	}
	attachmentHandlers := &AttachmentHandlers{
		Svc:            services.Attachments,
		Limiter:        services.Limiter,
		MaxUploadBytes: services.MaxUploadBytes,
		Logger:         services.Logger,
	}

	registerAuthRoutes(mux, authHandlers, requireAuth)
	registerUserRoutes(mux, &UserHandlers{Svc: services.Users}, adminOnly)
	registerCustomerRoutes(mux, &CustomerHandlers{Svc: services.Customers}, requireAuth, adminOnly)
	registerEquipmentRoutes(mux, &EquipmentHandlers{Svc: services.Equipment}, requireAuth, adminOnly)
	registerTechnicianRoutes(mux, &TechnicianHandlers{Svc: services.Technicians}, requireAuth, adminOnly)
	registerActivityRoutes(mux, &ActivityHandlers{Svc: services.Activities}, requireAuth, adminOnly)
	registerSparePartRoutes(mux, &SparePartHandlers{Svc: services.SpareParts}, requireAuth, adminOnly)
	registerAttachmentRoutes(mux, attachmentHandlers, requireAuth, adminOnly)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

// chain composes middleware left to right: the first entry is outermost.
func chain(mws ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, requireAuth func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.Handle("GET /api/auth/me", requireAuth(http.HandlerFunc(h.Me)))
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers, adminOnly func(http.Handler) http.Handler) {
	registerCRUD(mux, crudRoutes{
		Base:       "/api/users",
		Create:     h.Create,
		List:       h.List,
		GetByID:    h.Get,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: adminOnly,
	})
}

func registerCustomerRoutes(mux *http.ServeMux, h *CustomerHandlers, mw, adminOnly func(http.Handler) http.Handler) {
	registerCRUD(mux, crudRoutes{
		Base:             "/api/customers",
		Create:           h.Create,
		List:             h.List,
		GetByID:          h.Get,
		Update:           h.Update,
		Delete:           h.Delete,
		Middleware:       mw,
		DeleteMiddleware: adminOnly,
	})
}

func registerEquipmentRoutes(mux *http.ServeMux, h *EquipmentHandlers, mw, adminOnly func(http.Handler) http.Handler) {
	registerCRUD(mux, crudRoutes{
		Base:             "/api/equipment",
		Create:           h.Create,
		List:             h.List,
		GetByID:          h.Get,
		Update:           h.Update,
		Delete:           h.Delete,
		Middleware:       mw,
		DeleteMiddleware: adminOnly,
	})
}

func registerTechnicianRoutes(mux *http.ServeMux, h *TechnicianHandlers, mw, adminOnly func(http.Handler) http.Handler) {
	registerCRUD(mux, crudRoutes{
		Base:             "/api/technicians",
		Create:           h.Create,
		List:             h.List,
		GetByID:          h.Get,
		Update:           h.Update,
		Delete:           h.Delete,
		Middleware:       mw,
		DeleteMiddleware: adminOnly,
	})
}

func registerActivityRoutes(mux *http.ServeMux, h *ActivityHandlers, mw, adminOnly func(http.Handler) http.Handler) {
	registerCRUD(mux, crudRoutes{
		Base:             "/api/activities",
		Create:           h.Create,
		List:             h.List,
		GetByID:          h.Get,
		Update:           h.Update,
		Delete:           h.Delete,
		Middleware:       mw,
		DeleteMiddleware: adminOnly,
	})
}

func registerSparePartRoutes(mux *http.ServeMux, h *SparePartHandlers, mw, adminOnly func(http.Handler) http.Handler) {
	registerCRUD(mux, crudRoutes{
		Base:             "/api/spare-parts",
		Create:           h.Create,
		List:             h.List,
		GetByID:          h.Get,
		Update:           h.Update,
		Delete:           h.Delete,
		Middleware:       mw,
		DeleteMiddleware: adminOnly,
	})
	mux.Handle("POST /api/spare-parts/{id}/adjust", mw(http.HandlerFunc(h.AdjustQuantity)))
}

func registerAttachmentRoutes(mux *http.ServeMux, h *AttachmentHandlers, mw, adminOnly func(http.Handler) http.Handler) {
	mux.Handle("POST /api/activities/{id}/attachments", mw(http.HandlerFunc(h.Upload)))
	mux.Handle("GET /api/activities/{id}/attachments", mw(http.HandlerFunc(h.ListByActivity)))
	mux.Handle("GET /api/attachments/{id}", mw(http.HandlerFunc(h.Get)))
	mux.Handle("GET /api/attachments/{id}/download", mw(http.HandlerFunc(h.Download)))
	mux.Handle("DELETE /api/attachments/{id}", adminOnly(http.HandlerFunc(h.Delete)))
}

// crudRoutes describes the handlers for a standard CRUD resource.
type crudRoutes struct {
	Base       string
	Create     http.HandlerFunc
	List       http.HandlerFunc
	GetByID    http.HandlerFunc
	Update     http.HandlerFunc
	Delete     http.HandlerFunc
	Middleware func(http.Handler) http.Handler
	// DeleteMiddleware overrides Middleware for the delete route when set.
	// Destructive operations are typically gated tighter than reads.
	DeleteMiddleware func(http.Handler) http.Handler
}

// registerCRUD registers standard CRUD routes for a resource base path,
// applying Middleware to every route and DeleteMiddleware to the delete.
func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		if cfg.Middleware != nil {
			return cfg.Middleware(h)
		}
		return h
	}
	wrapDelete := wrap
	if cfg.DeleteMiddleware != nil {
		wrapDelete = func(h http.HandlerFunc) http.Handler { return cfg.DeleteMiddleware(h) }
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrapDelete(cfg.Delete))
}
