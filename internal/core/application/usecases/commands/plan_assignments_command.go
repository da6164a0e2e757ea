package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrPlanAssignmentsCommandIsNotConstructed = errors.New(
	"PlanAssignmentsCommand must be created via NewPlanAssignmentsCommand constructor",
)

// PlanAssignmentsCommand requests a courier assignment plan for a batch of
// clean orders against a courier roster.
type PlanAssignmentsCommand struct { //nolint:recvcheck //using for validation
	orders   []order.Order
	couriers []*courier.Courier

	guard guard.ConstructorGuard
}

// NewPlanAssignmentsCommand creates the command. Both slices may be empty;
// every courier in the roster must be a constructed aggregate.
func NewPlanAssignmentsCommand(orders []order.Order, couriers []*courier.Courier) (PlanAssignmentsCommand, error) {
	cmd := PlanAssignmentsCommand{
		orders: orders,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setCouriers(couriers); err != nil {
		return PlanAssignmentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlanAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrPlanAssignmentsCommandIsNotConstructed)
}

// Orders returns the clean orders in processing order.
func (c PlanAssignmentsCommand) Orders() []order.Order {
	return c.orders
}

// Couriers returns the courier roster.
func (c PlanAssignmentsCommand) Couriers() []*courier.Courier {
	return c.couriers
}

func (c *PlanAssignmentsCommand) setCouriers(couriers []*courier.Courier) error {
	for _, cr := range couriers {
		if err := cr.Validate(); err != nil {
			return err
		}
	}

	c.couriers = couriers
	return nil
}
