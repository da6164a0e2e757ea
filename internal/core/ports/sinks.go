package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/plan"
	"dispatch/internal/core/domain/model/recon"
)

// CleanOrdersSink persists the deduplicated orders and dedup warnings.
type CleanOrdersSink interface {
	WriteCleanOrders(ctx context.Context, orders []order.Order, warnings []string) error
}

// PlanSink persists an assignment plan.
type PlanSink interface {
	WritePlan(ctx context.Context, p plan.Plan) error
}

// ReconciliationSink persists a reconciliation report.
type ReconciliationSink interface {
	WriteReconciliation(ctx context.Context, report recon.Report) error
}
