package httpx

import (
	"net/http"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/service"
)

// TechnicianHandlers provides HTTP handlers for technician CRUD.
type TechnicianHandlers struct {
	Svc *service.TechnicianService
}

// Create handles POST /api/technicians.
func (h *TechnicianHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateTechnicianRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	technician, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, technician)
}

// Get handles GET /api/technicians/{id}.
func (h *TechnicianHandlers) Get(w http.ResponseWriter, r *http.Request) {
	technician, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, technician)
}

// List handles GET /api/technicians.
func (h *TechnicianHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, 200)
	technicians, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, technicians)
}

// Update handles PUT /api/technicians/{id}.
func (h *TechnicianHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req *model.UpdateTechnicianRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	technician, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, technician)
}

// Delete handles DELETE /api/technicians/{id}.
func (h *TechnicianHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errNotFound("technician")})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
