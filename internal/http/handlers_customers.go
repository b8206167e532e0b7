package httpx

import (
	"net/http"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/service"
)

// CustomerHandlers provides HTTP handlers for customer CRUD.
type CustomerHandlers struct {
	Svc *service.CustomerService
}

// Create handles POST /api/customers.
func (h *CustomerHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateCustomerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	customer, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, customer)
}

// Get handles GET /api/customers/{id}.
func (h *CustomerHandlers) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, customer)
}

// List handles GET /api/customers with paging and optional q/city filters.
func (h *CustomerHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, 200)
	customers, err := h.Svc.List(r.Context(), model.CustomersListOptions{
		Limit:  limit,
		Offset: offset,
		Q:      optionalQuery(r, "q"),
		City:   optionalQuery(r, "city"),
	})
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, customers)
}

// Update handles PUT /api/customers/{id}.
func (h *CustomerHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req *model.UpdateCustomerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	customer, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/{id}.
func (h *CustomerHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errNotFound("customer")})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
