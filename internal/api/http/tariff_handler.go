package http

import (
	"net/http"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// TariffHandler handles rental and fine rate endpoints
type TariffHandler struct {
	tariffs service.TariffService
}

// NewTariffHandler creates a new tariff handler
func NewTariffHandler(tariffs service.TariffService) *TariffHandler {
	return &TariffHandler{tariffs: tariffs}
}

type updateTariffRequest struct {
	DailyRentalRate decimal.Decimal `json:"daily_rental_rate"`
	DailyFineRate   decimal.Decimal `json:"daily_fine_rate"`
}

// HandleUpdate sets the canonical daily rental and fine rates
func (h *TariffHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateTariffRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	tariff, err := h.tariffs.UpdateTariff(r.Context(), req.DailyRentalRate, req.DailyFineRate)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, tariff)
}

// HandleList lists all tariffs
func (h *TariffHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tariffs, err := h.tariffs.ListTariffs(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, tariffs)
}

// HandleGet returns one tariff
func (h *TariffHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	tariff, err := h.tariffs.GetTariff(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, tariff)
}

// RegisterTariffRoutes registers tariff endpoints. The whole tariff surface
// is restricted to administrators.
func RegisterTariffRoutes(router *mux.Router, tariffs service.TariffService, auth *AuthMiddleware) {
	handler := NewTariffHandler(tariffs)
	adminOnly := auth.RequireRole(domain.RoleAdmin)

	router.HandleFunc("/tariffs", adminOnly(handler.HandleUpdate)).Methods("PUT")
	router.HandleFunc("/tariffs", adminOnly(handler.HandleList)).Methods("GET")
	router.HandleFunc("/tariffs/{id}", adminOnly(handler.HandleGet)).Methods("GET")
}
