package jsonfile

import "context"

// OrdersSource reads raw order records from a JSON array file. Records are
// returned as loosely-typed maps; key casing and field aliases are the
// normalizer's concern.
type OrdersSource struct {
	path string
}

// NewOrdersSource creates a source reading from path.
func NewOrdersSource(path string) *OrdersSource {
	return &OrdersSource{path: path}
}

// ReadOrders loads the full order batch.
func (s *OrdersSource) ReadOrders(_ context.Context) ([]map[string]any, error) {
	var records []map[string]any
	if err := readJSON(s.path, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []map[string]any{}
	}
	return records, nil
}
