package commands

import (
	"context"

	"dispatch/internal/core/domain/model/plan"
	"dispatch/internal/core/domain/services"
)

// PlanAssignmentsCommandHandler runs the assignment engine over a command's
// orders and roster.
type PlanAssignmentsCommandHandler struct {
	planner services.Planner
}

// NewPlanAssignmentsCommandHandler creates the handler.
func NewPlanAssignmentsCommandHandler() PlanAssignmentsCommandHandler {
	return PlanAssignmentsCommandHandler{planner: services.NewPlanner()}
}

// Handle produces the assignment plan. Unassignable orders are a first-class
// part of the plan, not an error.
func (h PlanAssignmentsCommandHandler) Handle(_ context.Context, cmd PlanAssignmentsCommand) (plan.Plan, error) {
	if err := cmd.Validate(); err != nil {
		return plan.Plan{}, err
	}

	return h.planner.Plan(cmd.Orders(), cmd.Couriers()), nil
}
