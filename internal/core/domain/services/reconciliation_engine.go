package services

import (
	"sort"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/plan"
	"dispatch/internal/core/domain/model/recon"
	"dispatch/internal/core/domain/model/scan"
)

// scanTimeLayout is the timestamp format shared by order deadlines and
// delivery scans.
const scanTimeLayout = "2006-01-02 15:04"

// Reconciler cross-references planned assignments, clean orders and the
// delivery-scan log into the five-category report. Each category is computed
// independently per scan row, so categories may overlap. Unparseable
// timestamps only suppress lateness evaluation for that row; they never
// surface as errors.
type Reconciler struct{}

// NewReconciler creates a Reconciler.
func NewReconciler() Reconciler {
	return Reconciler{}
}

// Reconcile classifies scan rows in input order. The courier roster is part
// of the interface for symmetry with planning but does not participate in
// the computation today.
func (r Reconciler) Reconcile(assignments []plan.Assignment, orders []order.Order, scans []scan.Record, _ []*courier.Courier) recon.Report {
	knownIDs := make(map[string]struct{}, len(orders))
	ordersByID := make(map[string]order.Order, len(orders))
	for _, o := range orders {
		if o.ID() == "" {
			continue
		}
		knownIDs[o.ID()] = struct{}{}
		if _, ok := ordersByID[o.ID()]; !ok {
			ordersByID[o.ID()] = o
		}
	}

	plannedByOrder := make(map[string]string, len(assignments))
	for _, a := range assignments {
		plannedByOrder[a.OrderID] = a.CourierID
	}

	var unexpected, misassigned, late, duplicate []string
	delivered := make(map[string]struct{})
	seenScan := make(map[string]struct{})

	for _, row := range scans {
		oid := scan.NormalizeID(row.OrderID)
		if oid == "" {
			continue
		}
		cid := strings.TrimSpace(row.CourierID)
		ts := strings.TrimSpace(row.DeliveredAt)

		if _, known := knownIDs[oid]; !known {
			unexpected = append(unexpected, oid)
		}

		if _, dup := seenScan[oid]; dup {
			duplicate = append(duplicate, oid)
		} else {
			seenScan[oid] = struct{}{}
		}

		delivered[oid] = struct{}{}

		if planned := plannedByOrder[oid]; planned != "" && planned != cid {
			misassigned = append(misassigned, oid)
		}

		if o, ok := ordersByID[oid]; ok && o.HasDeadline() && ts != "" {
			if deliveredAt, deadline, ok := parseScanTimes(ts, o.Deadline()); ok && deliveredAt.After(deadline) {
				late = append(late, oid)
			}
		}
	}

	notDelivered := make([]string, 0, len(knownIDs))
	for id := range knownIDs {
		if _, ok := delivered[id]; !ok {
			notDelivered = append(notDelivered, id)
		}
	}
	sort.Strings(notDelivered)

	return recon.Report{
		Unexpected:   sortedUnique(unexpected),
		Misassigned:  sortedUnique(misassigned),
		Late:         sortedUnique(late),
		Duplicate:    sortedUnique(duplicate),
		NotDelivered: notDelivered,
	}
}

// parseScanTimes parses the delivery timestamp and the deadline; ok is false
// when either fails to parse.
func parseScanTimes(deliveredAt, deadline string) (time.Time, time.Time, bool) {
	d, err := time.Parse(scanTimeLayout, deliveredAt)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	dl, err := time.Parse(scanTimeLayout, deadline)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return d, dl, true
}

// sortedUnique returns the sorted distinct values of ids. The result is
// never nil so the report serializes as an empty list, not null.
func sortedUnique(ids []string) []string {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
