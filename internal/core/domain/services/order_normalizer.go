package services

import (
	"strconv"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/zone"
)

// OrderNormalizer turns raw, loosely-keyed order records into canonical
// Orders. Record keys are matched case-insensitively, recognized field
// spellings are tried in a fixed priority order, the city is resolved
// through the zone map, and missing or malformed fields degrade to blank
// strings or zero weight. The loosely-typed record never travels past this
// stage.
type OrderNormalizer struct {
	zones zone.Map
}

// NewOrderNormalizer creates a normalizer bound to a zone alias map.
func NewOrderNormalizer(zones zone.Map) OrderNormalizer {
	return OrderNormalizer{zones: zones}
}

// Normalize converts raw records to canonical Orders, preserving input order.
// It never fails: unrecognized or malformed fields produce defaults.
func (n OrderNormalizer) Normalize(raw []map[string]any) []order.Order {
	normalized := make([]order.Order, 0, len(raw))
	for _, rec := range raw {
		normalized = append(normalized, n.normalizeOne(kernel.NormalizeRecordKeys(rec)))
	}
	return normalized
}

func (n OrderNormalizer) normalizeOne(rec map[string]any) order.Order {
	// The identifier chain picks the first key holding a non-empty value and
	// trims afterwards, so a whitespace-only orderid wins over a populated
	// fallback key and degrades to blank.
	id := strings.TrimSpace(firstPresent(rec, "orderid", "order_id", "order"))

	city := n.zones.Resolve(stringField(rec, "city"))

	paymentType := stringField(rec, "paymenttype")
	if paymentType == "" {
		paymentType = stringField(rec, "payment")
	}

	return order.New(
		id,
		city,
		paymentType,
		stringField(rec, "producttype"),
		weightField(rec, "weight"),
		stringField(rec, "deadline"),
		stringField(rec, "address"),
	)
}

// firstPresent returns the first non-empty string value among the keys,
// before trimming.
func firstPresent(rec map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := asString(rec[key]); s != "" {
			return s
		}
	}
	return ""
}

// stringField returns the trimmed string value of a key, blank when absent.
func stringField(rec map[string]any, key string) string {
	return strings.TrimSpace(asString(rec[key]))
}

// weightField coerces the weight best-effort to a float64, defaulting to 0
// when absent or unparseable.
func weightField(rec map[string]any, key string) float64 {
	switch v := rec[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		w, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return w
	default:
		return 0
	}
}

// asString renders scalar record values as strings; JSON numbers are
// formatted without an exponent so numeric identifiers survive.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
