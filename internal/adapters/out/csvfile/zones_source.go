package csvfile

import (
	"context"

	"dispatch/internal/core/domain/model/zone"
)

// ZonesSource reads the zone alias table from a `raw,canonical` CSV file.
type ZonesSource struct {
	path string
}

// NewZonesSource creates a source reading from path.
func NewZonesSource(path string) *ZonesSource {
	return &ZonesSource{path: path}
}

// ReadZoneAliases returns the alias pairs in file order. Values are passed
// through untrimmed; the zone map owns key normalization and fallbacks.
func (s *ZonesSource) ReadZoneAliases(_ context.Context) ([]zone.Alias, error) {
	t, err := readTable(s.path)
	if err != nil {
		return nil, err
	}

	aliases := make([]zone.Alias, 0, len(t.rows))
	for _, row := range t.rows {
		aliases = append(aliases, zone.Alias{
			Raw:       t.field(row, "raw"),
			Canonical: t.field(row, "canonical"),
		})
	}
	return aliases, nil
}
