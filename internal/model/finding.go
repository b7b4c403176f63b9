package model

// Finding represents a single exposure finding in a report.
// Findings are the presentation-level view of the typed event sequences
// (geotag events, PII findings, tagged-user events) and carry the severity
// assessment used by the report writers.
type Finding struct {
	// Type is the finding type identifier (e.g. "exif_gps", "pii_email").
	Type string `json:"type"`

	// Severity is the privacy impact level.
	Severity Severity `json:"severity"`

	// SeverityText is the human-readable severity.
	SeverityText string `json:"severity_text"`

	// Title is a short description of the finding.
	Title string `json:"title"`

	// Description provides more detail about the finding.
	Description string `json:"description,omitempty"`

	// Recommendation provides guidance on how to reduce this exposure.
	Recommendation string `json:"recommendation,omitempty"`

	// Value is the specific value found (location name, matched text, handle).
	Value string `json:"value,omitempty"`

	// Location is where the finding was discovered (post ID, file path,
	// or "biography").
	Location string `json:"location,omitempty"`
}
