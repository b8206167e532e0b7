package httpx

import (
	"net/http"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/service"
)

// SparePartHandlers provides HTTP handlers for spare parts stock.
type SparePartHandlers struct {
	Svc *service.SparePartService
}

// Create handles POST /api/spare-parts.
func (h *SparePartHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateSparePartRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	part, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, part)
}

// Get handles GET /api/spare-parts/{id}.
func (h *SparePartHandlers) Get(w http.ResponseWriter, r *http.Request) {
	part, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, part)
}

// List handles GET /api/spare-parts.
func (h *SparePartHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, 200)
	parts, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, parts)
}

// Update handles PUT /api/spare-parts/{id}.
func (h *SparePartHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req *model.UpdateSparePartRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	part, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, part)
}

type adjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// AdjustQuantity handles POST /api/spare-parts/{id}/adjust. It applies a
// signed stock delta atomically and returns the updated part.
func (h *SparePartHandlers) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	var req adjustQuantityRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	part, err := h.Svc.AdjustQuantity(r.Context(), r.PathValue("id"), req.Delta)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, part)
}

// Delete handles DELETE /api/spare-parts/{id}.
func (h *SparePartHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errNotFound("spare part")})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
