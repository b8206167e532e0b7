package httpx

import (
	"net/http"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/service"
)

// EquipmentHandlers provides HTTP handlers for equipment CRUD.
type EquipmentHandlers struct {
	Svc *service.EquipmentService
}

// Create handles POST /api/equipment.
func (h *EquipmentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateEquipmentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	equipment, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, equipment)
}

// Get handles GET /api/equipment/{id}.
func (h *EquipmentHandlers) Get(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, equipment)
}

// List handles GET /api/equipment with paging, an optional customer_id
// filter, and an optional q filter matching name or serial number.
func (h *EquipmentHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, 200)
	items, err := h.Svc.List(r.Context(), model.EquipmentListOptions{
		Limit:      limit,
		Offset:     offset,
		CustomerID: optionalQuery(r, "customer_id"),
		Q:          optionalQuery(r, "q"),
	})
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, items)
}

// Update handles PUT /api/equipment/{id}.
func (h *EquipmentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req *model.UpdateEquipmentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	equipment, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, equipment)
}

// Delete handles DELETE /api/equipment/{id}.
func (h *EquipmentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errNotFound("equipment")})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
