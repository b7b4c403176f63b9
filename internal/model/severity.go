package model

// Severity represents the privacy impact of an exposure finding.
// This allows categorizing findings by how directly they reveal a person's
// identity or location.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Severity int

const (
	// SeverityInfo indicates informational findings with no direct privacy impact.
	// Examples: post counts, media inventory, scan statistics.
	SeverityInfo Severity = iota

	// SeverityLow indicates minor issues with limited impact.
	// Examples: editing-software names or timestamps in media metadata.
	// These could support correlation but require additional data.
	SeverityLow

	// SeverityMedium indicates moderate issues that warrant attention.
	// Examples: named geotags on posts, tagged-user relationships.
	// These reveal places visited and social connections.
	SeverityMedium

	// SeverityHigh indicates serious issues that significantly expose a person.
	// Examples: email addresses, phone numbers, or government IDs in a
	// biography; device serial numbers tying media to one camera.
	SeverityHigh

	// SeverityCritical indicates findings that pinpoint a person's location.
	// Examples: GPS coordinates embedded in uploaded images.
	// These findings require immediate attention.
	SeverityCritical
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}
