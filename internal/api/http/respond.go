package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
)

// respondJSON writes payload as a JSON response with the given status
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError maps service errors to HTTP statuses. Rule violations carry
// their message to the caller as a 400; everything else is an opaque 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var ruleErr *domain.RuleError
	if errors.As(err, &ruleErr) {
		http.Error(w, ruleErr.Message, http.StatusBadRequest)
		return
	}

	logger.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// decodeJSON parses the request body into dst
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Reject("invalid request body")
	}
	return nil
}
