package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates the scheduled jobs of the application behind a
// single start/stop interface.
type JobManager struct {
	planRefreshJob *PlanRefreshJob
}

// NewJobManager creates a job manager wiring the refresh job to a pipeline
// runner.
func NewJobManager(runner PipelineRunner, refreshSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		planRefreshJob: NewPlanRefreshJob(runner, refreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.planRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start plan refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.planRefreshJob.Stop()
}
