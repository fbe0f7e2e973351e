package http

import (
	"net/http"

	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// ReportHandler handles the management report endpoints
type ReportHandler struct {
	reports service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// HandleActiveLoans lists unreturned loans due inside the requested range
func (h *ReportHandler) HandleActiveLoans(w http.ResponseWriter, r *http.Request) {
	from, err := parseDateParam(r.URL.Query().Get("from"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	to, err := parseDateParam(r.URL.Query().Get("to"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	loans, err := h.reports.ActiveLoans(r.Context(), from, to)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, loans)
}

// HandleOverdueCustomers lists customers holding a loan past its due date
func (h *ReportHandler) HandleOverdueCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.reports.OverdueCustomers(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, customers)
}

// HandleTopToolGroups ranks tool groups by loans started in the range
func (h *ReportHandler) HandleTopToolGroups(w http.ResponseWriter, r *http.Request) {
	from, err := parseDateParam(r.URL.Query().Get("from"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	to, err := parseDateParam(r.URL.Query().Get("to"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	ranking, err := h.reports.TopToolGroups(r.Context(), from, to)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ranking)
}

// HandleCustomersWithDebt lists customers with unpaid charges or overdue loans
func (h *ReportHandler) HandleCustomersWithDebt(w http.ResponseWriter, r *http.Request) {
	debtors, err := h.reports.CustomersWithDebt(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, debtors)
}

// RegisterReportRoutes registers the report endpoints
func RegisterReportRoutes(router *mux.Router, reports service.ReportService) {
	handler := NewReportHandler(reports)
	router.HandleFunc("/reports/active-loans", handler.HandleActiveLoans).Methods("GET")
	router.HandleFunc("/reports/overdue-customers", handler.HandleOverdueCustomers).Methods("GET")
	router.HandleFunc("/reports/top-tool-groups", handler.HandleTopToolGroups).Methods("GET")
	router.HandleFunc("/reports/customers-with-debt", handler.HandleCustomersWithDebt).Methods("GET")
}
