package jsonfile

import (
	"context"

	"dispatch/internal/core/domain/model/recon"
)

// ReconciliationSink writes the reconciliation artifact.
type ReconciliationSink struct {
	path string
}

// NewReconciliationSink creates a sink writing to path.
func NewReconciliationSink(path string) *ReconciliationSink {
	return &ReconciliationSink{path: path}
}

// WriteReconciliation serializes the five-category report.
func (s *ReconciliationSink) WriteReconciliation(ctx context.Context, report recon.Report) error {
	return writeJSON(ctx, s.path, reconciliationFromDomain(report))
}
