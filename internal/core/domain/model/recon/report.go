package recon

// Report classifies delivery-scan outcomes into five categories. Each
// category is computed independently, so one order identifier may appear in
// several of them (a scan can be both misassigned and late). All lists are
// deduplicated and sorted lexicographically.
type Report struct {
	// Unexpected holds scanned identifiers with no matching order.
	Unexpected []string
	// Misassigned holds identifiers delivered by a courier other than planned.
	Misassigned []string
	// Late holds identifiers delivered strictly after their deadline; only
	// evaluated when both timestamps parse.
	Late []string
	// Duplicate holds identifiers scanned more than once.
	Duplicate []string
	// NotDelivered holds known order identifiers with zero scans.
	NotDelivered []string
}
