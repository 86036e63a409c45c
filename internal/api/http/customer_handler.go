package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"olms-backend/internal/service"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// History serves GET /api/customers/{id}/history.
func (h *CustomerHandler) History(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, http.StatusBadRequest, "Customer ID is required")
		return
	}

	history, err := h.customers.GetCustomerHistory(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch customer history")
		return
	}
	writeJSON(w, http.StatusOK, history)
}
