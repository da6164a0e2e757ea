package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/order"
)

// Deduplicate collapses orders sharing an identifier, keeping the first
// occurrence and preserving first-seen order. Every extra occurrence whose
// address and the retained order's address are both non-blank and differ
// produces one warning; duplicates without an address conflict are dropped
// silently.
func Deduplicate(orders []order.Order) ([]order.Order, []string) {
	retained := make([]order.Order, 0, len(orders))
	seen := make(map[string]order.Order, len(orders))
	warnings := make([]string, 0)

	for _, o := range orders {
		first, ok := seen[o.ID()]
		if !ok {
			seen[o.ID()] = o
			retained = append(retained, o)
			continue
		}

		if o.Address() != "" && first.Address() != "" && o.Address() != first.Address() {
			warnings = append(warnings, fmt.Sprintf("Conflicting address for order %s", o.ID()))
		}
	}

	return retained, warnings
}
