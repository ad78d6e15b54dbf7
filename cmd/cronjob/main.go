package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"skyledger-backend/internal/config"
	"skyledger-backend/internal/jobs"
	"skyledger-backend/internal/logger"
	"skyledger-backend/internal/repository/postgres"
	"skyledger-backend/internal/scheduler"
	"skyledger-backend/internal/service"
	"skyledger-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'purge-invitations', 'all-nightly')")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting SkyLedger cronjob runner...", "log_level", cfg.Log.Level)

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

	fileStore, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize local storage: %v", err)
	}

	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	reportSvc := service.NewReportService(
		store.AircraftRepository,
		store.ShareRepository,
		store.MaintenanceRepository,
		store.ExpenseRepository,
		store.RentalRepository,
		service.NewBenchmarkService(store.BenchmarkRepository),
	)

	jobRunner := jobs.NewJobRunner(db, store, fileStore, &jobs.Services{
		Email:  emailSvc,
		Report: reportSvc,
	}, cfg)

	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
}

func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "purge-invitations":
		jobRunner.PurgeExpiredInvitations()
	case "cleanup-attachments":
		jobRunner.CleanupOrphanedAttachments()
	case "send-monthly-reports":
		jobRunner.SendMonthlyReports()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	case "all-monthly":
		jobRunner.RunAllMonthlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - purge-invitations\n")
		fmt.Printf("  - cleanup-attachments\n")
		fmt.Printf("  - send-monthly-reports\n")
		fmt.Printf("  - all-nightly\n")
		fmt.Printf("  - all-monthly\n")
		os.Exit(1)
	}
}
