package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/plan"
)

// Rejection reasons recorded for unassigned orders. Callers depend on the
// exact strings, including the product type echoed with its original casing.
const (
	ReasonZoneNotCovered   = "Zone not covered"
	ReasonCODNotAccepted   = "COD not accepted"
	ReasonCapacityExceeded = "Capacity exceeded"
)

// Planner matches orders to couriers.
//
// Orders are processed in input sequence. For each order the courier roster
// is filtered through an ordered chain of eligibility predicates:
//
//  1. zone coverage (exact, case-sensitive match on the canonical city)
//  2. COD acceptance (enforced only for cash-on-delivery orders)
//  3. product exclusion (case-insensitive)
//  4. remaining daily capacity
//
// The first predicate that eliminates every remaining candidate decides the
// rejection reason; later predicates are not evaluated for that order. Among
// survivors the courier with the lowest current load wins, ties broken by
// the smallest priority number, couriers without a priority ranking last.
// The winner's load is increased before the next order is processed, which
// makes the plan greedy and order-sensitive rather than globally optimal.
type Planner struct{}

// NewPlanner creates a Planner.
func NewPlanner() Planner {
	return Planner{}
}

// Plan produces assignments, the unassigned identifiers in processing order,
// the final per-courier capacity usage, and one rejection reason per
// unassigned order. Every order lands in exactly one of assignments or
// unassigned.
func (p Planner) Plan(orders []order.Order, couriers []*courier.Courier) plan.Plan {
	usage := make(map[string]float64, len(couriers))
	for _, c := range couriers {
		usage[c.ID()] = 0
	}

	result := plan.Plan{
		Assignments:       make([]plan.Assignment, 0, len(orders)),
		Unassigned:        make([]string, 0),
		CapacityUsage:     usage,
		UnassignedReasons: make(map[string]string),
	}

	for _, o := range orders {
		candidates := filterCouriers(couriers, func(c *courier.Courier) bool {
			return c.CoversZone(o.City())
		})
		if len(candidates) == 0 {
			reject(&result, o.ID(), ReasonZoneNotCovered)
			continue
		}

		if o.IsCOD() {
			candidates = filterCouriers(candidates, (*courier.Courier).AcceptsCOD)
			if len(candidates) == 0 {
				reject(&result, o.ID(), ReasonCODNotAccepted)
				continue
			}
		}

		candidates = filterCouriers(candidates, func(c *courier.Courier) bool {
			return !c.Excludes(o.ProductType())
		})
		if len(candidates) == 0 {
			reject(&result, o.ID(), fmt.Sprintf("Excluded product type: %s", o.ProductType()))
			continue
		}

		candidates = filterCouriers(candidates, func(c *courier.Courier) bool {
			return usage[c.ID()]+o.Weight() <= c.DailyCapacity()
		})
		if len(candidates) == 0 {
			reject(&result, o.ID(), ReasonCapacityExceeded)
			continue
		}

		chosen := pickLeastLoaded(candidates, usage)
		result.Assignments = append(result.Assignments, plan.Assignment{
			OrderID:   o.ID(),
			CourierID: chosen.ID(),
		})
		usage[chosen.ID()] += o.Weight()
	}

	return result
}

// pickLeastLoaded selects the courier with the smallest current load,
// breaking ties by the smallest priority number. Full ties keep the earliest
// roster entry.
func pickLeastLoaded(candidates []*courier.Courier, usage map[string]float64) *courier.Courier {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if usage[c.ID()] < usage[best.ID()] {
			best = c
			continue
		}
		if usage[c.ID()] == usage[best.ID()] && c.Priority() < best.Priority() {
			best = c
		}
	}
	return best
}

func filterCouriers(couriers []*courier.Courier, keep func(*courier.Courier) bool) []*courier.Courier {
	kept := make([]*courier.Courier, 0, len(couriers))
	for _, c := range couriers {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

func reject(p *plan.Plan, orderID, reason string) {
	p.Unassigned = append(p.Unassigned, orderID)
	p.UnassignedReasons[orderID] = reason
}
