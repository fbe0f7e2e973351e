package http

import (
	"net/http"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// LoanHandler handles the loan lifecycle endpoints
type LoanHandler struct {
	loans service.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loans service.LoanService) *LoanHandler {
	return &LoanHandler{loans: loans}
}

type registerLoanRequest struct {
	ToolGroupID int32     `json:"tool_group_id"`
	CustomerID  int32     `json:"customer_id"`
	DueDate     time.Time `json:"due_date"`
}

type returnLoanRequest struct {
	DamageCharge decimal.Decimal `json:"damage_charge"`
	Irreparable  bool            `json:"irreparable"`
}

type applyDamageRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Irreparable bool            `json:"irreparable"`
}

// HandleRegister lends an available unit of the requested tool group
func (h *LoanHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	loan, err := h.loans.RegisterLoan(r.Context(), req.ToolGroupID, req.CustomerID, req.DueDate, actorFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, loan)
}

// HandleReturn closes a loan, computing cost and late fine
func (h *LoanHandler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req returnLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	loan, err := h.loans.ReturnLoan(r.Context(), id, req.DamageCharge, req.Irreparable, actorFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, loan)
}

// HandleApplyDamage records a damage charge on an already-returned loan
func (h *LoanHandler) HandleApplyDamage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req applyDamageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.loans.ApplyDamage(r.Context(), id, req.Amount, req.Irreparable); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"result": "damage applied"})
}

// HandlePayDebts clears the fine and damage charge on a loan
func (h *LoanHandler) HandlePayDebts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.loans.PayDebts(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"result": "debts paid"})
}

// HandleListActive lists loans due around now that are still out
func (h *LoanHandler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loans.ListActive(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, loans)
}

// HandleListReturnedWithDebts lists returned loans with unpaid charges
func (h *LoanHandler) HandleListReturnedWithDebts(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loans.ListReturnedWithDebts(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, loans)
}

// RegisterLoanRoutes registers loan lifecycle endpoints
func RegisterLoanRoutes(router *mux.Router, loans service.LoanService, auth *AuthMiddleware) {
	handler := NewLoanHandler(loans)
	adminOnly := auth.RequireRole(domain.RoleAdmin)

	router.HandleFunc("/loans", handler.HandleRegister).Methods("POST")
	router.HandleFunc("/loans/active", handler.HandleListActive).Methods("GET")
	router.HandleFunc("/loans/returned-with-debts", handler.HandleListReturnedWithDebts).Methods("GET")
	// pending-payment is the historical name for the same listing
	router.HandleFunc("/loans/pending-payment", handler.HandleListReturnedWithDebts).Methods("GET")
	router.HandleFunc("/loans/{id}/return", handler.HandleReturn).Methods("POST")
	router.HandleFunc("/loans/{id}/damage", adminOnly(handler.HandleApplyDamage)).Methods("POST")
	router.HandleFunc("/loans/{id}/pay-debts", handler.HandlePayDebts).Methods("POST")
}
