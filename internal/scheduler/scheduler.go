package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"skyledger-backend/internal/jobs"
	"skyledger-backend/internal/logger"
)

// Scheduler manages cron job scheduling.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Seconds precision, evaluated in UTC.
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.PurgeExpiredInvitations, s.jobs.PurgeExpiredInvitations)
	if err != nil {
		logger.Error("Failed to register PurgeExpiredInvitations job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.CleanupAttachments, s.jobs.CleanupOrphanedAttachments)
	if err != nil {
		logger.Error("Failed to register CleanupOrphanedAttachments job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.SendMonthlyReports, s.jobs.SendMonthlyReports)
	if err != nil {
		logger.Error("Failed to register SendMonthlyReports job", "error", err)
	}

	logger.Info("All cron jobs registered")
}

// Start begins the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Cron scheduler started")
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}
