package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/service"
)

// UserHandlers provides HTTP handlers for account administration. All of
// these routes are admin-only; the role gate lives in the router.
type UserHandlers struct {
	Svc *service.UserService
}

func parseUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation_failed",
			Err:     errors.New("user id is invalid"),
		})
		return 0, false
	}
	return id, true
}

// Create handles POST /api/users.
func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}

// Get handles GET /api/users/{id}.
func (h *UserHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, r)
	if !ok {
		return
	}

	user, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// List handles GET /api/users.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, 200)
	users, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, users)
}

// Update handles PUT /api/users/{id}.
func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req *model.UpdateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, r)
	if !ok {
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		RenderServiceError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errNotFound("user")})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
