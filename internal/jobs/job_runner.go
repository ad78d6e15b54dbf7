package jobs

import (
	"database/sql"

	"skyledger-backend/internal/config"
	"skyledger-backend/internal/logger"
	"skyledger-backend/internal/repository/postgres"
	"skyledger-backend/internal/service"
	"skyledger-backend/internal/storage"
)

// JobRunner coordinates all scheduled jobs.
type JobRunner struct {
	db       *sql.DB
	store    *postgres.Store
	storage  storage.Interface
	services *Services
	config   *config.Config
}

// Services holds the service dependencies jobs need.
type Services struct {
	Email  service.EmailService
	Report service.ReportService
}

func NewJobRunner(db *sql.DB, store *postgres.Store, fileStore storage.Interface, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		store:    store,
		storage:  fileStore,
		services: services,
		config:   cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so a bad job never
// takes the scheduler down.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution).
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.PurgeExpiredInvitations()
	jr.CleanupOrphanedAttachments()
}

// RunAllMonthlyJobs runs all monthly jobs (for manual execution).
func (jr *JobRunner) RunAllMonthlyJobs() {
	jr.SendMonthlyReports()
}
