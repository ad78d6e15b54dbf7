package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "skyledger-backend/internal/api/http"
	"skyledger-backend/internal/config"
	"skyledger-backend/internal/logger"
	"skyledger-backend/internal/repository/postgres"
	"skyledger-backend/internal/security"
	"skyledger-backend/internal/service"
	"skyledger-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting SkyLedger backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		cfg.AccessTokenExpiryMinutes(),
		cfg.RefreshTokenExpiryMinutes(),
	)

	if cfg.Storage.Type != "" && cfg.Storage.Type != "local" {
		log.Fatalf("Storage type '%s' not yet implemented", cfg.Storage.Type)
	}
	fileStore, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize local storage: %v", err)
	}
	logger.Info("Using local receipt storage", "upload_dir", cfg.Storage.UploadDir)

	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	benchmarkSvc := service.NewBenchmarkService(store.BenchmarkRepository)
	svcs := httpapi.Services{
		Auth:        service.NewAuthService(store.UserRepository, tokenManager),
		Aircraft:    service.NewAircraftService(store.AircraftRepository, store.ShareRepository),
		Share:       service.NewShareService(store.AircraftRepository, store.ShareRepository, store.UserRepository, emailSvc),
		Maintenance: service.NewMaintenanceService(store.AircraftRepository, store.ShareRepository, store.MaintenanceRepository, fileStore),
		Expense:     service.NewExpenseService(store.AircraftRepository, store.ShareRepository, store.ExpenseRepository),
		Rental:      service.NewRentalService(store.AircraftRepository, store.ShareRepository, store.RentalRepository),
		Benchmark:   benchmarkSvc,
		Report: service.NewReportService(
			store.AircraftRepository,
			store.ShareRepository,
			store.MaintenanceRepository,
			store.ExpenseRepository,
			store.RentalRepository,
			benchmarkSvc,
		),
	}

	router := httpapi.NewRouter(svcs, tokenManager, fileStore, cfg.Storage.MaxUploadBytes())

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
