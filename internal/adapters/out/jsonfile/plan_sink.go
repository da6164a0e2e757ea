package jsonfile

import (
	"context"

	"dispatch/internal/core/domain/model/plan"
)

// PlanSink writes the assignment-plan artifact.
type PlanSink struct {
	path string
}

// NewPlanSink creates a sink writing to path.
func NewPlanSink(path string) *PlanSink {
	return &PlanSink{path: path}
}

// WritePlan serializes the plan.
func (s *PlanSink) WritePlan(ctx context.Context, p plan.Plan) error {
	return writeJSON(ctx, s.path, planFromDomain(p))
}
