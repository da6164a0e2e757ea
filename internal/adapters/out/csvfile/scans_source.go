package csvfile

import (
	"context"

	"dispatch/internal/core/domain/model/scan"
)

// ScansSource reads the delivery-scan log from an
// `orderId,courierId,deliveredAt` CSV file.
type ScansSource struct {
	path string
}

// NewScansSource creates a source reading from path.
func NewScansSource(path string) *ScansSource {
	return &ScansSource{path: path}
}

// ReadScans returns the scan rows in log order. Values are kept raw; the
// reconciliation engine normalizes scanned identifiers itself.
func (s *ScansSource) ReadScans(_ context.Context) ([]scan.Record, error) {
	t, err := readTable(s.path)
	if err != nil {
		return nil, err
	}

	records := make([]scan.Record, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, scan.Record{
			OrderID:     t.field(row, "orderid"),
			CourierID:   t.field(row, "courierid"),
			DeliveredAt: t.field(row, "deliveredat"),
		})
	}
	return records, nil
}
