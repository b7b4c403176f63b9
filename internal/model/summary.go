package model

import "time"

// Summary is the summarized, human-readable view of an ExposureReport.
// It extracts headline numbers from the full report for quick review.
//
// Design decision: We create a separate summary rather than just printing
// parts of ExposureReport because:
// 1. It provides a consistent, curated view of the most important findings
// 2. It can be serialized to JSON for tools that want structured but simple output
// 3. It separates presentation concerns from data collection
type Summary struct {
	// Subject is the scanned profile's handle.
	Subject string `json:"subject"`

	// DateScanned is when the scan was performed.
	DateScanned time.Time `json:"date_scanned"`

	// === Severity counts ===

	// CriticalCount is the number of critical findings.
	CriticalCount int `json:"critical_count"`

	// HighCount is the number of high severity findings.
	HighCount int `json:"high_count"`

	// MediumCount is the number of medium severity findings.
	MediumCount int `json:"medium_count"`

	// LowCount is the number of low severity findings.
	LowCount int `json:"low_count"`

	// InfoCount is the number of informational findings.
	InfoCount int `json:"info_count"`

	// === Exposure counts ===

	// GeotagCount is the number of location exposures.
	GeotagCount int `json:"geotag_count"`

	// PIICount is the number of PII occurrences found in the biography.
	PIICount int `json:"pii_count"` //nolint:tagliatelle // PII is standard acronym

	// TaggedUserCount is the number of tagged-user occurrences.
	TaggedUserCount int `json:"tagged_user_count"`

	// === Scan statistics ===

	// PostsScanned is the number of posts successfully processed.
	PostsScanned int `json:"posts_scanned"`

	// MediaScanned is the number of media files successfully processed.
	MediaScanned int `json:"media_scanned"`

	// NotFound indicates the profile did not exist or had no content.
	NotFound bool `json:"not_found,omitempty"`

	// Error contains any error message if the scan failed.
	Error string `json:"error,omitempty"`

	// Findings contains all findings, in discovery order.
	Findings []Finding `json:"findings,omitempty"`
}

// NewSummary creates a Summary from an ExposureReport.
func NewSummary(report *ExposureReport) *Summary {
	s := &Summary{
		Subject:         report.Subject.String(),
		DateScanned:     report.DateScanned,
		GeotagCount:     len(report.GeotagEvents),
		PIICount:        len(report.PIIFindings),
		TaggedUserCount: len(report.TaggedUserEvents),
		PostsScanned:    report.PostsScanned,
		MediaScanned:    report.MediaScanned,
		NotFound:        report.NotFound,
		Findings:        report.Findings,
		Error:           report.ErrorMessage,
	}
	s.countBySeverity()
	return s
}

// countBySeverity tallies findings into the per-severity counters.
func (s *Summary) countBySeverity() {
	for _, f := range s.Findings {
		switch f.Severity {
		case SeverityCritical:
			s.CriticalCount++
		case SeverityHigh:
			s.HighCount++
		case SeverityMedium:
			s.MediumCount++
		case SeverityLow:
			s.LowCount++
		case SeverityInfo:
			s.InfoCount++
		}
	}
}

// TotalFindings returns the total number of findings.
func (s *Summary) TotalFindings() int {
	return len(s.Findings)
}

// HasFindings reports whether the summary contains any findings.
func (s *Summary) HasFindings() bool {
	return len(s.Findings) > 0
}

// FindingsBySeverity returns the findings at the given severity level,
// preserving discovery order.
func (s *Summary) FindingsBySeverity(severity Severity) []Finding {
	findings := make([]Finding, 0)
	for _, f := range s.Findings {
		if f.Severity == severity {
			findings = append(findings, f)
		}
	}
	return findings
}
