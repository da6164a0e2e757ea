package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// CleanOrdersResult is the first artifact of a run: deduplicated canonical
// orders plus one warning per conflicting duplicate.
type CleanOrdersResult struct {
	Orders   []order.Order
	Warnings []string
}

// NormalizeOrdersCommandHandler runs the normalization and deduplication
// stages. It never fails on malformed records; the only error it can return
// is a command validation error.
type NormalizeOrdersCommandHandler struct{}

// NewNormalizeOrdersCommandHandler creates the handler.
func NewNormalizeOrdersCommandHandler() NormalizeOrdersCommandHandler {
	return NormalizeOrdersCommandHandler{}
}

// Handle normalizes the raw records and collapses duplicate identifiers,
// keeping first occurrences.
func (h NormalizeOrdersCommandHandler) Handle(_ context.Context, cmd NormalizeOrdersCommand) (CleanOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return CleanOrdersResult{}, err
	}

	normalizer := services.NewOrderNormalizer(cmd.Zones())
	normalized := normalizer.Normalize(cmd.RawOrders())
	clean, warnings := services.Deduplicate(normalized)

	return CleanOrdersResult{Orders: clean, Warnings: warnings}, nil
}
