package jsonfile

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// CouriersSource reads the courier roster from a JSON array file.
type CouriersSource struct {
	path string
}

// NewCouriersSource creates a source reading from path.
func NewCouriersSource(path string) *CouriersSource {
	return &CouriersSource{path: path}
}

// ReadCouriers loads and constructs the roster. A courier record that fails
// domain validation aborts the read; roster files are curated inputs, not
// scan data.
func (s *CouriersSource) ReadCouriers(_ context.Context) ([]*courier.Courier, error) {
	var dtos []courierDTO
	if err := readJSON(s.path, &dtos); err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}
