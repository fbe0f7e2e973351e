package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "toolrent-backend/internal/api/http"
	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/security"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func tariffRouter(tariffs *MockTariffService, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	auth := httpapi.NewAuthMiddleware(tokens)
	sub := router.PathPrefix("/api/v1").Subrouter()
	sub.Use(auth.Authenticate)
	httpapi.RegisterTariffRoutes(sub, tariffs, auth)
	return router
}

func TestTariffHandler_List(t *testing.T) {
	tokens := security.NewTokenManager(testSecret, 60)

	t.Run("AdminLists", func(t *testing.T) {
		tariffs := new(MockTariffService)
		router := tariffRouter(tariffs, tokens)

		tariffs.On("ListTariffs", mock.Anything).Return([]domain.Tariff{
			{ID: 1, DailyRentalRate: decimal.NewFromInt(1000), DailyFineRate: decimal.NewFromInt(500)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tariffs", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, domain.RoleAdmin))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []domain.Tariff
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 1)
	})

	t.Run("EmployeeForbidden", func(t *testing.T) {
		tariffs := new(MockTariffService)
		router := tariffRouter(tariffs, tokens)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tariffs", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, domain.RoleEmployee))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		tariffs.AssertNotCalled(t, "ListTariffs", mock.Anything)
	})

	t.Run("EmployeeForbiddenOnGet", func(t *testing.T) {
		tariffs := new(MockTariffService)
		router := tariffRouter(tariffs, tokens)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tariffs/1", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, domain.RoleEmployee))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		tariffs.AssertNotCalled(t, "GetTariff", mock.Anything, mock.Anything)
	})
}
