package http

import (
	"net/http"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// ToolHandler handles tool group and tool unit endpoints
type ToolHandler struct {
	groups service.ToolGroupService
	units  service.ToolUnitService
}

// NewToolHandler creates a new tool handler
func NewToolHandler(groups service.ToolGroupService, units service.ToolUnitService) *ToolHandler {
	return &ToolHandler{groups: groups, units: units}
}

type registerToolGroupRequest struct {
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	ReplacementValue decimal.Decimal `json:"replacement_value"`
	PricePerDay      decimal.Decimal `json:"price_per_day"`
	Stock            int             `json:"stock"`
}

type changeUnitStatusRequest struct {
	Status domain.ToolStatus `json:"status"`
}

// HandleRegisterGroup creates a tool group with its initial stock of units
func (h *ToolHandler) HandleRegisterGroup(w http.ResponseWriter, r *http.Request) {
	var req registerToolGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	group, err := h.groups.RegisterToolGroup(r.Context(), req.Name, req.Category,
		req.ReplacementValue, req.PricePerDay, req.Stock, actorFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, group)
}

// HandleListGroups lists all tool groups, or only those with a unit available
func (h *ToolHandler) HandleListGroups(w http.ResponseWriter, r *http.Request) {
	var (
		groups []domain.ToolGroup
		err    error
	)

	if r.URL.Query().Get("available") == "true" {
		groups, err = h.groups.ListWithAvailableUnits(r.Context())
	} else {
		groups, err = h.groups.ListToolGroups(r.Context())
	}
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, groups)
}

// HandleGetGroup returns one tool group with its tariff and units
func (h *ToolHandler) HandleGetGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	group, err := h.groups.GetToolGroup(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, group)
}

// HandleGroupStock returns the count of loanable units in a group
func (h *ToolHandler) HandleGroupStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	stock, err := h.units.RealStock(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"stock": stock})
}

// HandleListUnits lists all tool units with their group
func (h *ToolHandler) HandleListUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.units.ListUnits(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, units)
}

// HandleGetUnit returns one tool unit
func (h *ToolHandler) HandleGetUnit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	unit, err := h.units.GetUnit(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, unit)
}

// HandleChangeUnitStatus moves a unit through its lifecycle states
func (h *ToolHandler) HandleChangeUnitStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req changeUnitStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	unit, err := h.units.ChangeStatus(r.Context(), id, req.Status, actorFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, unit)
}

// HandleRetireFromRepair writes off a unit under repair, charging the
// replacement value on its last loan
func (h *ToolHandler) HandleRetireFromRepair(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.units.RetireFromRepair(r.Context(), id, actorFrom(r)); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": string(domain.ToolStatusRetired)})
}

// RegisterToolRoutes registers tool group and tool unit endpoints
func RegisterToolRoutes(router *mux.Router, groups service.ToolGroupService, units service.ToolUnitService, auth *AuthMiddleware) {
	handler := NewToolHandler(groups, units)
	adminOnly := auth.RequireRole(domain.RoleAdmin)

	router.HandleFunc("/tool-groups", adminOnly(handler.HandleRegisterGroup)).Methods("POST")
	router.HandleFunc("/tool-groups", handler.HandleListGroups).Methods("GET")
	router.HandleFunc("/tool-groups/{id}", handler.HandleGetGroup).Methods("GET")
	router.HandleFunc("/tool-groups/{id}/stock", handler.HandleGroupStock).Methods("GET")

	router.HandleFunc("/tool-units", handler.HandleListUnits).Methods("GET")
	router.HandleFunc("/tool-units/{id}", handler.HandleGetUnit).Methods("GET")
	router.HandleFunc("/tool-units/{id}/status", adminOnly(handler.HandleChangeUnitStatus)).Methods("PUT")
	router.HandleFunc("/tool-units/{id}/retire-from-repair", adminOnly(handler.HandleRetireFromRepair)).Methods("POST")
}
