package http

import (
	"net/http"

	"toolrent-backend/internal/security"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the HTTP layer needs
type Services struct {
	Auth      service.AuthService
	Customers service.CustomerService
	Groups    service.ToolGroupService
	Units     service.ToolUnitService
	Tariffs   service.TariffService
	Loans     service.LoanService
	Kardex    service.KardexService
	Reports   service.ReportService
}

// NewRouter builds the API router. Everything under /api/v1 except the login
// endpoint requires a valid bearer token.
func NewRouter(services *Services, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID)

	router.HandleFunc("/healthz", handleHealth).Methods("GET")
	RegisterAuthRoutes(router, services.Auth)

	auth := NewAuthMiddleware(tokens)
	protected := router.PathPrefix("/api/v1").Subrouter()
	protected.Use(auth.Authenticate)

	RegisterCustomerRoutes(protected, services.Customers, auth)
	RegisterToolRoutes(protected, services.Groups, services.Units, auth)
	RegisterTariffRoutes(protected, services.Tariffs, auth)
	RegisterLoanRoutes(protected, services.Loans, auth)
	RegisterKardexRoutes(protected, services.Kardex)
	RegisterReportRoutes(protected, services.Reports)

	return router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
