package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/csvfile"
	"dispatch/internal/adapters/out/jsonfile"
	"dispatch/internal/core/application/pipeline"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/jobs"
)

// CompositionRoot wires adapters, command handlers and the pipeline runner
// from the configuration.
type CompositionRoot struct {
	config Config
}

// NewCompositionRoot creates the composition root.
func NewCompositionRoot(config Config) CompositionRoot {
	return CompositionRoot{config: config}
}

// CreateNormalizeOrdersCommandHandler builds the normalization handler.
func (c *CompositionRoot) CreateNormalizeOrdersCommandHandler() commands.NormalizeOrdersCommandHandler {
	return commands.NewNormalizeOrdersCommandHandler()
}

// CreatePlanAssignmentsCommandHandler builds the planning handler.
func (c *CompositionRoot) CreatePlanAssignmentsCommandHandler() commands.PlanAssignmentsCommandHandler {
	return commands.NewPlanAssignmentsCommandHandler()
}

// CreateReconcileCommandHandler builds the reconciliation handler.
func (c *CompositionRoot) CreateReconcileCommandHandler() commands.ReconcileCommandHandler {
	return commands.NewReconcileCommandHandler()
}

// CreatePipelineRunner builds the file-based pipeline runner: the four fixed
// sources, the three command handlers, and the three artifact sinks.
func (c *CompositionRoot) CreatePipelineRunner(logger *slog.Logger) *pipeline.Runner {
	return pipeline.NewRunner(pipeline.Dependencies{
		Orders:   jsonfile.NewOrdersSource(c.config.OrdersPath),
		Couriers: jsonfile.NewCouriersSource(c.config.CouriersPath),
		Zones:    csvfile.NewZonesSource(c.config.ZonesPath),
		Scans:    csvfile.NewScansSource(c.config.ScanLogPath),

		CleanOrders:     jsonfile.NewCleanOrdersSink(c.config.CleanOrdersPath),
		Plans:           jsonfile.NewPlanSink(c.config.PlanPath),
		Reconciliations: jsonfile.NewReconciliationSink(c.config.ReconciliationPath),

		NormalizeHandler: c.CreateNormalizeOrdersCommandHandler(),
		PlanHandler:      c.CreatePlanAssignmentsCommandHandler(),
		ReconcileHandler: c.CreateReconcileCommandHandler(),

		Logger: logger,
	})
}

// CreateHTTPServer builds the HTTP server over the same command handlers the
// batch pipeline uses.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateNormalizeOrdersCommandHandler(),
		c.CreatePlanAssignmentsCommandHandler(),
		c.CreateReconcileCommandHandler(),
	)
}

// CreateJobManager builds the scheduled jobs for server mode.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePipelineRunner(logger), c.config.RefreshSchedule, logger)
}
