package scan

import (
	"regexp"
	"strings"
)

// idCharset keeps ASCII letters, digits and hyphens; everything else is
// stripped from scanned order identifiers.
var idCharset = regexp.MustCompile(`[^A-Za-z0-9-]`)

// Record is a single logged delivery event tying an order to a courier and
// an optional delivery timestamp in "YYYY-MM-DD HH:MM" form. Field values
// are kept as read from the log; normalization happens during reconciliation.
type Record struct {
	OrderID     string
	CourierID   string
	DeliveredAt string
}

// NormalizeID canonicalizes a scanned order identifier: trim surrounding
// whitespace, upper-case, then strip every character outside [A-Za-z0-9-].
// Scanner artifacts such as "ord_001!" therefore become "ORD-001"-style ids
// comparable against the order list.
func NormalizeID(raw string) string {
	return idCharset.ReplaceAllString(strings.ToUpper(strings.TrimSpace(raw)), "")
}
