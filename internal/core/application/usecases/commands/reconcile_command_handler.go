package commands

import (
	"context"

	"dispatch/internal/core/domain/model/recon"
	"dispatch/internal/core/domain/services"
)

// ReconcileCommandHandler runs the reconciliation engine.
type ReconcileCommandHandler struct {
	reconciler services.Reconciler
}

// NewReconcileCommandHandler creates the handler.
func NewReconcileCommandHandler() ReconcileCommandHandler {
	return ReconcileCommandHandler{reconciler: services.NewReconciler()}
}

// Handle classifies the scan log into the five-category report.
func (h ReconcileCommandHandler) Handle(_ context.Context, cmd ReconcileCommand) (recon.Report, error) {
	if err := cmd.Validate(); err != nil {
		return recon.Report{}, err
	}

	return h.reconciler.Reconcile(cmd.Assignments(), cmd.Orders(), cmd.Scans(), cmd.Couriers()), nil
}
