package jobs

import (
	"context"
	"log/slog"

	"foodshare/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatsSnapshotJob periodically logs the global donation counts per
// lifecycle state. It is observability only and never modifies state.
type StatsSnapshotJob struct {
	handler queries.GetStatusBreakdownQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatsSnapshotJob creates a job that snapshots donation counts once a
// minute.
func NewStatsSnapshotJob(handler queries.GetStatusBreakdownQueryHandler, logger *slog.Logger) *StatsSnapshotJob {
	return &StatsSnapshotJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stats_snapshot_job"),
	}
}

// Start begins the snapshot job on a once-a-minute schedule.
func (j *StatsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetStatusBreakdownQuery()

		breakdown, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stats snapshot job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Donation stats snapshot",
			"total", breakdown.Total(),
			"available", breakdown.Available,
			"reserved", breakdown.Reserved,
			"completed", breakdown.Completed,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats snapshot job started (running every minute)")
	return nil
}

// Stop stops the snapshot job.
func (j *StatsSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats snapshot job stopped")
}
