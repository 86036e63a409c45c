package jobs

import (
	"context"
	"time"

	"olms-backend/internal/config"
	"olms-backend/internal/logger"
	"olms-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	loans  service.LoanMaintenanceService
	config *config.Config
	now    func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(loans service.LoanMaintenanceService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		loans:  loans,
		config: cfg,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Config returns the configuration the runner was built with.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context)) {
	l := logger.WithJob(jobName)
	defer func() {
		if r := recover(); r != nil {
			l.Error("Job panicked", "panic", r)
		}
	}()

	ctx := logger.NewContext(context.Background(), l)
	start := time.Now()
	l.Info("Starting job")
	jobFunc(ctx)
	l.Info("Job completed", "duration_ms", time.Since(start).Milliseconds())
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution). Overdue
// marking goes first so the zone refresh sees the new statuses.
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.MarkOverdueLoans()
	jr.RefreshRiskZones()
}
