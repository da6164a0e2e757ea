package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/scan"
	"dispatch/internal/core/domain/model/zone"
)

// OrderSource supplies raw order records. Records are loosely keyed; the
// normalizer resolves casing and field aliases.
type OrderSource interface {
	ReadOrders(ctx context.Context) ([]map[string]any, error)
}

// CourierSource supplies the courier roster as constructed aggregates.
type CourierSource interface {
	ReadCouriers(ctx context.Context) ([]*courier.Courier, error)
}

// ZoneSource supplies the zone alias table in file order; later pairs with a
// duplicate raw spelling overwrite earlier ones when the map is built.
type ZoneSource interface {
	ReadZoneAliases(ctx context.Context) ([]zone.Alias, error)
}

// ScanSource supplies the delivery-scan log rows in log order.
type ScanSource interface {
	ReadScans(ctx context.Context) ([]scan.Record, error)
}
