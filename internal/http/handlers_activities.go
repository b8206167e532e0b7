package httpx

import (
	"errors"
	"net/http"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/service"
)

// ActivityHandlers provides HTTP handlers for service activity CRUD.
type ActivityHandlers struct {
	Svc *service.ActivityService
}

// Create handles POST /api/activities.
func (h *ActivityHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateActivityRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	activity, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, activity)
}

// Get handles GET /api/activities/{id}.
func (h *ActivityHandlers) Get(w http.ResponseWriter, r *http.Request) {
	activity, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, activity)
}

// List handles GET /api/activities with paging and optional customer_id,
// technician_id, and status filters.
func (h *ActivityHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, 200)
	opts := model.ActivitiesListOptions{
		Limit:        limit,
		Offset:       offset,
		CustomerID:   optionalQuery(r, "customer_id"),
		TechnicianID: optionalQuery(r, "technician_id"),
	}
	if raw := optionalQuery(r, "status"); raw != nil {
		status, ok := model.ParseActivityStatus(*raw)
		if !ok {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "validation_failed",
				Err:     errors.New("status must be one of: open, in_progress, closed"),
			})
			return
		}
		opts.Status = &status
	}

	activities, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, activities)
}

// Update handles PUT /api/activities/{id}.
func (h *ActivityHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req *model.UpdateActivityRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	activity, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, activity)
}

// Delete handles DELETE /api/activities/{id}.
func (h *ActivityHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errNotFound("activity")})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
