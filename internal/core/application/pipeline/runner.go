package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/zone"
	"dispatch/internal/core/ports"
)

// Dependencies wires the sources, sinks and handlers a Runner needs.
type Dependencies struct {
	Orders   ports.OrderSource
	Couriers ports.CourierSource
	Zones    ports.ZoneSource
	Scans    ports.ScanSource

	CleanOrders     ports.CleanOrdersSink
	Plans           ports.PlanSink
	Reconciliations ports.ReconciliationSink

	NormalizeHandler commands.NormalizeOrdersCommandHandler
	PlanHandler      commands.PlanAssignmentsCommandHandler
	ReconcileHandler commands.ReconcileCommandHandler

	Logger *slog.Logger
}

// Runner executes the whole pipeline as one sequential pass: read the four
// inputs, normalize and deduplicate, plan assignments, reconcile against the
// scan log, write the three artifacts. A run is deterministic: the same
// inputs produce the same artifacts. Only source and sink failures abort a
// run; malformed rows degrade inside the engines.
type Runner struct {
	deps   Dependencies
	logger *slog.Logger
}

// NewRunner creates a Runner from its dependencies.
func NewRunner(deps Dependencies) *Runner {
	return &Runner{
		deps:   deps,
		logger: deps.Logger.With("component", "pipeline_runner"),
	}
}

// RunOnce performs a single pipeline pass. Each run is tagged with a UUID
// used only for log correlation; the artifacts themselves carry no run
// metadata, their shapes are fixed.
func (r *Runner) RunOnce(ctx context.Context) error {
	runID := uuid.NewString()
	r.logger.InfoContext(ctx, "Pipeline run started", "runId", runID)

	rawOrders, err := r.deps.Orders.ReadOrders(ctx)
	if err != nil {
		return err
	}
	couriers, err := r.deps.Couriers.ReadCouriers(ctx)
	if err != nil {
		return err
	}
	aliases, err := r.deps.Zones.ReadZoneAliases(ctx)
	if err != nil {
		return err
	}
	scans, err := r.deps.Scans.ReadScans(ctx)
	if err != nil {
		return err
	}

	normalizeCmd, err := commands.NewNormalizeOrdersCommand(rawOrders, zone.NewMap(aliases))
	if err != nil {
		return err
	}
	clean, err := r.deps.NormalizeHandler.Handle(ctx, normalizeCmd)
	if err != nil {
		return err
	}

	planCmd, err := commands.NewPlanAssignmentsCommand(clean.Orders, couriers)
	if err != nil {
		return err
	}
	assignmentPlan, err := r.deps.PlanHandler.Handle(ctx, planCmd)
	if err != nil {
		return err
	}

	reconcileCmd, err := commands.NewReconcileCommand(assignmentPlan.Assignments, clean.Orders, scans, couriers)
	if err != nil {
		return err
	}
	report, err := r.deps.ReconcileHandler.Handle(ctx, reconcileCmd)
	if err != nil {
		return err
	}

	if err := r.deps.CleanOrders.WriteCleanOrders(ctx, clean.Orders, clean.Warnings); err != nil {
		return err
	}
	if err := r.deps.Plans.WritePlan(ctx, assignmentPlan); err != nil {
		return err
	}
	if err := r.deps.Reconciliations.WriteReconciliation(ctx, report); err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Pipeline run completed",
		"runId", runID,
		"orders", len(clean.Orders),
		"warnings", len(clean.Warnings),
		"assigned", len(assignmentPlan.Assignments),
		"unassigned", len(assignmentPlan.Unassigned),
		"notDelivered", len(report.NotDelivered),
	)
	return nil
}
