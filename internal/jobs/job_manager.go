package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Schedules holds the cron expressions (with seconds) of every job.
type Schedules struct {
	OverdueOrders       string
	ActiveOrdersSummary string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	overdueOrdersJob       *OverdueOrdersJob
	activeOrdersSummaryJob *ActiveOrdersSummaryJob
}

// NewJobManager creates both jobs with their schedules. now supplies the clock for overdue checks.
func NewJobManager(
	activeOrdersHandler ActiveOrdersHandler,
	schedules Schedules,
	now func() time.Time,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueOrdersJob:       NewOverdueOrdersJob(activeOrdersHandler, schedules.OverdueOrders, now, logger),
		activeOrdersSummaryJob: NewActiveOrdersSummaryJob(activeOrdersHandler, schedules.ActiveOrdersSummary, logger),
	}
}

// StartAll starts all scheduled jobs.
// Failed job starts will stop any already running jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue orders job: %w", err)
	}

	if err := jm.activeOrdersSummaryJob.Start(); err != nil {
		jm.overdueOrdersJob.Stop()
		return fmt.Errorf("failed to start active orders summary job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running passes to finish.
func (jm *JobManager) StopAll() {
	jm.activeOrdersSummaryJob.Stop()
	jm.overdueOrdersJob.Stop()
}
