package jobs

import (
	"fmt"
	"log/slog"

	"foodshare/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statsSnapshotJob *StatsSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statusBreakdownHandler queries.GetStatusBreakdownQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statsSnapshotJob: NewStatsSnapshotJob(statusBreakdownHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statsSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsSnapshotJob.Stop()
}
