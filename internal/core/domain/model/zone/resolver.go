package zone

import "strings"

// Alias is one row of the zone alias table: a raw free-text city spelling and
// the canonical zone name it maps to.
type Alias struct {
	Raw       string
	Canonical string
}

// Map resolves raw city strings to canonical zone names.
// Keys are the lower-cased, trimmed raw spellings.
type Map struct {
	canonical map[string]string
}

// NewMap builds a Map from alias pairs.
//
// Rules:
//   - the raw spelling is lower-cased and trimmed to form the lookup key;
//     blank raws are skipped
//   - the canonical value is trimmed; when blank, the original raw spelling
//     is used as the canonical value
//   - later pairs with the same raw key overwrite earlier ones, so duplicate
//     aliases are not an error
func NewMap(aliases []Alias) Map {
	canonical := make(map[string]string, len(aliases))
	for _, a := range aliases {
		raw := strings.ToLower(strings.TrimSpace(a.Raw))
		if raw == "" {
			continue
		}

		value := strings.TrimSpace(a.Canonical)
		if value == "" {
			value = a.Raw
		}
		canonical[raw] = value
	}

	return Map{canonical: canonical}
}

// Resolve maps a city string to its canonical zone name. The lookup is
// case-insensitive and whitespace-insensitive. Unmapped cities are returned
// trimmed but otherwise unchanged, preserving their original casing.
func (m Map) Resolve(city string) string {
	trimmed := strings.TrimSpace(city)
	if canonical, ok := m.canonical[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// Len reports the number of distinct raw spellings in the map.
func (m Map) Len() int {
	return len(m.canonical)
}
