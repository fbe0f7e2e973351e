package http

import (
	"net/http"
	"strconv"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// KardexHandler handles the inventory movement ledger endpoints
type KardexHandler struct {
	kardex service.KardexService
}

// NewKardexHandler creates a new kardex handler
func NewKardexHandler(kardex service.KardexService) *KardexHandler {
	return &KardexHandler{kardex: kardex}
}

// HandleList lists kardex movements, filtered by tool group or date range
// when the corresponding query parameters are present.
func (h *KardexHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if raw := q.Get("tool_group_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			respondError(w, r, domain.Reject("invalid tool_group_id query parameter"))
			return
		}
		movements, err := h.kardex.ListByToolGroup(r.Context(), int32(id))
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, movements)
		return
	}

	if q.Get("from") != "" || q.Get("to") != "" {
		from, err := parseDateParam(q.Get("from"))
		if err != nil {
			respondError(w, r, err)
			return
		}
		to, err := parseDateParam(q.Get("to"))
		if err != nil {
			respondError(w, r, err)
			return
		}
		movements, err := h.kardex.ListByDateRange(r.Context(), from, to)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, movements)
		return
	}

	movements, err := h.kardex.ListMovements(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, movements)
}

// parseDateParam accepts RFC 3339 timestamps or plain yyyy-mm-dd dates
func parseDateParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, domain.Reject("both from and to query parameters are required")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.Reject("invalid date parameter: " + raw)
	}
	return t, nil
}

// RegisterKardexRoutes registers the kardex ledger endpoints
func RegisterKardexRoutes(router *mux.Router, kardex service.KardexService) {
	handler := NewKardexHandler(kardex)
	router.HandleFunc("/kardex", handler.HandleList).Methods("GET")
}
