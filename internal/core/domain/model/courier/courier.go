package courier

import (
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// NoPrioritySentinel ranks couriers without a declared priority last during
// tie-breaking. Lower priority numbers are preferred.
const NoPrioritySentinel = 1_000_000_000

var (
	// ErrCourierIDIsRequired is returned when constructing a courier without an identifier.
	ErrCourierIDIsRequired = errs.NewValueIsRequiredError("courierId")
	// ErrDailyCapacityIsInvalid is returned when the declared daily capacity is negative.
	ErrDailyCapacityIsInvalid = errs.NewValueIsInvalidError("dailyCapacity")
	// ErrCourierIsNotConstructed is returned when using a Courier that was not built via New.
	ErrCourierIsNotConstructed = errs.NewValueIsInvalidError("Courier must be created via New constructor")
)

// Courier is a read-only participant of a planning run. It declares which
// zones it covers, whether it accepts cash-on-delivery orders, which product
// types it refuses, a daily weight capacity, and an optional priority used
// for tie-breaking (lower number = more preferred).
//
// Capacity usage during a run is external mutable state owned by the
// assignment engine; the Courier itself never changes within a run.
type Courier struct {
	id            string
	zonesCovered  map[string]struct{}
	acceptsCOD    bool
	dailyCapacity float64
	priority      int
	exclusions    map[string]struct{}

	guard guard.ConstructorGuard
}

// New creates a Courier.
//
// Zone names are kept verbatim: coverage checks are exact, case-sensitive
// matches against the canonical city. Exclusions are matched
// case-insensitively and are stored lower-cased. A nil priority means the
// courier has no declared priority and ranks last in tie-breaks.
func New(id string, zonesCovered []string, acceptsCOD bool, dailyCapacity float64, priority *int, exclusions []string) (*Courier, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrCourierIDIsRequired
	}
	if dailyCapacity < 0 {
		return nil, ErrDailyCapacityIsInvalid
	}

	zones := make(map[string]struct{}, len(zonesCovered))
	for _, z := range zonesCovered {
		zones[z] = struct{}{}
	}

	excluded := make(map[string]struct{}, len(exclusions))
	for _, e := range exclusions {
		excluded[strings.ToLower(e)] = struct{}{}
	}

	effectivePriority := NoPrioritySentinel
	if priority != nil {
		effectivePriority = *priority
	}

	return &Courier{
		id:            strings.TrimSpace(id),
		zonesCovered:  zones,
		acceptsCOD:    acceptsCOD,
		dailyCapacity: dailyCapacity,
		priority:      effectivePriority,
		exclusions:    excluded,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Courier was created through the New constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier identifier.
func (c *Courier) ID() string {
	return c.id
}

// AcceptsCOD reports whether the courier takes cash-on-delivery orders.
func (c *Courier) AcceptsCOD() bool {
	return c.acceptsCOD
}

// DailyCapacity returns the ceiling on cumulative assigned weight per run.
func (c *Courier) DailyCapacity() float64 {
	return c.dailyCapacity
}

// Priority returns the declared priority, or NoPrioritySentinel when the
// courier has none.
func (c *Courier) Priority() int {
	return c.priority
}

// CoversZone reports whether the courier covers the given canonical city.
// The match is exact and case-sensitive.
func (c *Courier) CoversZone(city string) bool {
	_, ok := c.zonesCovered[city]
	return ok
}

// Excludes reports whether the courier refuses the given product type.
// The match is case-insensitive.
func (c *Courier) Excludes(productType string) bool {
	_, ok := c.exclusions[strings.ToLower(productType)]
	return ok
}
