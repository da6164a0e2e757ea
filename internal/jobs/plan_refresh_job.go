package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// PipelineRunner executes one full pipeline pass.
type PipelineRunner interface {
	RunOnce(ctx context.Context) error
}

// PlanRefreshJob re-runs the pipeline on a cron schedule. Every run is a
// complete, independent pass; overlapping state between runs does not exist,
// so a failed run only leaves the previous artifacts in place.
type PlanRefreshJob struct {
	runner   PipelineRunner
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPlanRefreshJob creates a refresh job with a standard 5-field cron
// schedule.
func NewPlanRefreshJob(runner PipelineRunner, schedule string, logger *slog.Logger) *PlanRefreshJob {
	return &PlanRefreshJob{
		runner:   runner,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "plan_refresh_job"),
	}
}

// Start begins the scheduled refresh.
func (j *PlanRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.runner.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Plan refresh run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Plan refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduled refresh.
func (j *PlanRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Plan refresh job stopped")
}
