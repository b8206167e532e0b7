package httpx

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	domainauth "github.com/medidea/medidea-api/internal/domain/auth"
	"github.com/medidea/medidea-api/internal/ports"
	"github.com/medidea/medidea-api/internal/service"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics, logs them, and
// responds with a JSON 500 carrying the panic message.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic",
						slog.Any("error", rec),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					WriteError(w, ErrorParams{
						Code:    http.StatusInternalServerError,
						ErrCode: "internal_error",
						Err:     fmt.Errorf("%v", rec),
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns a middleware that requires a verifiable bearer token.
// Missing header, malformed header, and bad tokens all produce the same 401
// so callers learn nothing about why verification failed.
func RequireAuth(tokens ports.TokenAuthority) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFromRequest(r, tokens)
			if claims == nil {
				writeAuthRequired(w)
				return
			}

			ctx := SetClaimsInContext(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns a middleware that requires an exact role match.
// An authenticated caller with a different role gets 403; admins are not
// implicitly allowed through gates for other roles.
func RequireRole(tokens ports.TokenAuthority, requiredRole domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFromRequest(r, tokens)
			if claims == nil {
				writeAuthRequired(w)
				return
			}

			if claims.Role != requiredRole {
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "insufficient_permissions",
					Err:     errors.New("insufficient permissions"),
				})
				return
			}

			ctx := SetClaimsInContext(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// APIRateLimit returns a middleware applying the general API policy to every
// /api request. Authenticated callers are keyed by user ID so a shared NAT
// does not pool their budgets; anonymous callers fall back to client IP.
func APIRateLimit(limiter *service.RateLimiter, trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || !strings.HasPrefix(r.URL.Path, "/api/") {
				next.ServeHTTP(w, r)
				return
			}

			identifier := ClientIP(r, trustProxy)
			if claims, ok := GetClaimsFromContext(r.Context()); ok {
				identifier = "user:" + strconv.FormatInt(claims.UserID, 10)
			}

			decision, err := limiter.CheckAPI(r.Context(), identifier)
			if err != nil {
				WriteError(w, ErrorParams{
					Code:    http.StatusInternalServerError,
					ErrCode: "rate_limit_unavailable",
					Err:     err,
				})
				return
			}
			if !decision.Allowed {
				WriteRateLimited(w, decision)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// claimsFromRequest extracts and verifies the bearer token, returning nil on
// any failure.
func claimsFromRequest(r *http.Request, tokens ports.TokenAuthority) *domainauth.Claims {
	raw, ok := domainauth.ExtractBearer(r.Header.Get("Authorization"))
	if !ok {
		return nil
	}
	claims, ok := tokens.Verify(raw)
	if !ok {
		return nil
	}
	return claims
}


func writeAuthRequired(w http.ResponseWriter) {
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "authentication_required",
		Err:     errors.New("authentication required"),
	})
}
