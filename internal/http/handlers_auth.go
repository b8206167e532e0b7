// Package httpx provides the JSON API handlers and middleware for the
// Medidea service management backend.
package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/medidea/medidea-api/internal/service"
)

// AuthHandlers provides HTTP handlers for login and session introspection.
type AuthHandlers struct {
	Svc        *service.AuthService
	Limiter    *service.RateLimiter
	TrustProxy bool
	Logger     *slog.Logger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// Login handles POST /api/auth/login. Attempts are rate limited per client
// address before any credential work happens.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if h.Limiter != nil {
		decision, err := h.Limiter.CheckLogin(r.Context(), ClientIP(r, h.TrustProxy))
		if err != nil {
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "rate_limit_unavailable", Err: err})
			return
		}
		if !decision.Allowed {
			if h.Logger != nil {
				h.Logger.Warn("login rate limited", slog.String("ip", ClientIP(r, h.TrustProxy)))
			}
			WriteRateLimited(w, decision)
			return
		}
	}

	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	res, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, loginResponse{Token: res.Token, User: res.User})
}

// Me handles GET /api/auth/me for the authenticated caller.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := GetClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	user, err := h.Svc.Me(r.Context(), claims.UserID)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}
