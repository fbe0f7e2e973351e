package http

import (
	"net/http"
	"strconv"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// CustomerHandler handles customer management endpoints
type CustomerHandler struct {
	customers service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type registerCustomerRequest struct {
	Name  string `json:"name"`
	RUT   string `json:"rut"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type changeCustomerStatusRequest struct {
	Status domain.CustomerStatus `json:"status"`
}

// HandleRegister creates a new customer
func (h *CustomerHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	customer, err := h.customers.RegisterCustomer(r.Context(), req.Name, req.RUT, req.Phone, req.Email)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, customer)
}

// HandleChangeStatus switches a customer between ACTIVE and RESTRICTED
func (h *CustomerHandler) HandleChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req changeCustomerStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.customers.ChangeStatus(r.Context(), id, req.Status); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": string(req.Status)})
}

// HandleListActive lists only ACTIVE customers
func (h *CustomerHandler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListByStatus(r.Context(), domain.CustomerStatusActive)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, customers)
}

// HandleList lists customers, optionally filtered by status
func (h *CustomerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var (
		customers []domain.Customer
		err       error
	)

	if status := r.URL.Query().Get("status"); status != "" {
		customers, err = h.customers.ListByStatus(r.Context(), domain.CustomerStatus(status))
	} else {
		customers, err = h.customers.ListCustomers(r.Context())
	}
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, customers)
}

// pathID extracts a numeric {name} path variable
func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.Reject("invalid " + name + " path parameter")
	}
	return int32(id), nil
}

// RegisterCustomerRoutes registers customer endpoints on the authenticated
// router. Customer administration is restricted to administrators; the active
// listing is open to any staff role.
func RegisterCustomerRoutes(router *mux.Router, customers service.CustomerService, auth *AuthMiddleware) {
	handler := NewCustomerHandler(customers)
	adminOnly := auth.RequireRole(domain.RoleAdmin)

	router.HandleFunc("/customers", adminOnly(handler.HandleRegister)).Methods("POST")
	router.HandleFunc("/customers", adminOnly(handler.HandleList)).Methods("GET")
	router.HandleFunc("/customers/active", handler.HandleListActive).Methods("GET")
	router.HandleFunc("/customers/{id}/status", adminOnly(handler.HandleChangeStatus)).Methods("PUT")
}
