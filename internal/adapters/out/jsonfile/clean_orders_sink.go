package jsonfile

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CleanOrdersSink writes the clean-orders artifact.
type CleanOrdersSink struct {
	path string
}

// NewCleanOrdersSink creates a sink writing to path.
func NewCleanOrdersSink(path string) *CleanOrdersSink {
	return &CleanOrdersSink{path: path}
}

// WriteCleanOrders serializes the deduplicated orders and warnings.
func (s *CleanOrdersSink) WriteCleanOrders(ctx context.Context, orders []order.Order, warnings []string) error {
	dtos := make([]cleanOrderDTO, len(orders))
	for i, o := range orders {
		dtos[i] = cleanOrderFromDomain(o)
	}

	return writeJSON(ctx, s.path, cleanOrdersDocument{
		Orders:   dtos,
		Warnings: emptyIfNil(warnings),
	})
}
