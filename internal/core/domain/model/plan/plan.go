package plan

// Assignment pairs one order identifier with one courier identifier.
// An order has at most one assignment, created exactly once during planning
// and never revised.
type Assignment struct {
	OrderID   string
	CourierID string
}

// Plan is the outcome of one planning run.
//
// CapacityUsage holds the cumulative assigned weight per courier, initialized
// to zero for every courier in the roster and only ever increased. Unassigned
// preserves processing order; UnassignedReasons carries exactly one
// human-readable reason per unassigned order, the one corresponding to the
// first eligibility filter that eliminated all candidates.
type Plan struct {
	Assignments       []Assignment
	Unassigned        []string
	CapacityUsage     map[string]float64
	UnassignedReasons map[string]string
}

// CourierFor returns the planned courier for an order identifier, or false
// when the order was not assigned.
func (p Plan) CourierFor(orderID string) (string, bool) {
	for _, a := range p.Assignments {
		if a.OrderID == orderID {
			return a.CourierID, true
		}
	}
	return "", false
}
