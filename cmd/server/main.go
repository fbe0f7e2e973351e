package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "toolrent-backend/internal/api/http"
	"toolrent-backend/internal/config"
	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository/postgres"
	"toolrent-backend/internal/security"
	"toolrent-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ToolRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Run schema migrations
	if err := postgres.Migrate(db, cfg.Migrations); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database schema up to date")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	authSvc := service.NewAuthService(store, tokenManager)
	customerSvc := service.NewCustomerService(store)
	groupSvc := service.NewToolGroupService(store)
	unitSvc := service.NewToolUnitService(store)
	tariffSvc := service.NewTariffService(store)
	loanSvc := service.NewLoanService(store)
	kardexSvc := service.NewKardexService(store)
	reportSvc := service.NewReportService(store)

	// Seed the initial admin account
	if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
		if err := authSvc.EnsureUser(context.Background(), cfg.Admin.Username, cfg.Admin.Password, domain.RoleAdmin); err != nil {
			logger.Error("Failed to seed admin account", "error", err)
			log.Fatalf("Failed to seed admin account: %v", err)
		}
	}

	// Set up HTTP server
	router := httpapi.NewRouter(&httpapi.Services{
		Auth:      authSvc,
		Customers: customerSvc,
		Groups:    groupSvc,
		Units:     unitSvc,
		Tariffs:   tariffSvc,
		Loans:     loanSvc,
		Kardex:    kardexSvc,
		Reports:   reportSvc,
	}, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
