package http

import (
	"context"
	"net/http"
	"strings"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/security"
	"toolrent-backend/internal/service"

	"github.com/google/uuid"
)

type contextKey string

const (
	claimsContextKey    contextKey = "user_claims"
	requestIDContextKey contextKey = "request_id"
)

// RequestID attaches a generated request ID to the context and response
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware validates bearer tokens and enforces role requirements
type AuthMiddleware struct {
	tokens security.TokenManager
}

// NewAuthMiddleware creates auth middleware backed by the token manager
func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid bearer token and stores the
// token claims in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "missing or malformed authorization header", http.StatusUnauthorized)
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Debug("Token validation failed", "error", err)
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole wraps a handler so only the listed roles may call it
func (m *AuthMiddleware) RequireRole(roles ...domain.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFrom(r)
			if claims == nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			for _, role := range roles {
				if claims.Role == string(role) {
					next(w, r)
					return
				}
			}
			http.Error(w, "insufficient permissions", http.StatusForbidden)
		}
	}
}

// claimsFrom returns the authenticated claims, or nil for anonymous requests
func claimsFrom(r *http.Request) *security.UserClaims {
	claims, _ := r.Context().Value(claimsContextKey).(*security.UserClaims)
	return claims
}

// actorFrom names the authenticated user for kardex attribution
func actorFrom(r *http.Request) string {
	if claims := claimsFrom(r); claims != nil {
		return claims.Username
	}
	return service.SystemActor
}
