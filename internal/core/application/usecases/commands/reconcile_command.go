package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/plan"
	"dispatch/internal/core/domain/model/scan"
	"dispatch/internal/pkg/guard"
)

var ErrReconcileCommandIsNotConstructed = errors.New(
	"ReconcileCommand must be created via NewReconcileCommand constructor",
)

// ReconcileCommand requests a reconciliation report comparing a plan and the
// clean orders against the delivery-scan log. The courier roster travels with
// the command for interface symmetry with planning.
type ReconcileCommand struct { //nolint:recvcheck //using for validation
	assignments []plan.Assignment
	orders      []order.Order
	scans       []scan.Record
	couriers    []*courier.Courier

	guard guard.ConstructorGuard
}

// NewReconcileCommand creates the command. All slices may be empty.
func NewReconcileCommand(
	assignments []plan.Assignment,
	orders []order.Order,
	scans []scan.Record,
	couriers []*courier.Courier,
) (ReconcileCommand, error) {
	return ReconcileCommand{
		assignments: assignments,
		orders:      orders,
		scans:       scans,
		couriers:    couriers,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileCommand) Validate() error {
	return c.guard.Validate(ErrReconcileCommandIsNotConstructed)
}

// Assignments returns the planned assignments.
func (c ReconcileCommand) Assignments() []plan.Assignment {
	return c.assignments
}

// Orders returns the clean orders.
func (c ReconcileCommand) Orders() []order.Order {
	return c.orders
}

// Scans returns the delivery-scan rows in log order.
func (c ReconcileCommand) Scans() []scan.Record {
	return c.scans
}

// Couriers returns the courier roster.
func (c ReconcileCommand) Couriers() []*courier.Courier {
	return c.couriers
}
