package model

import (
	"time"

	"github.com/google/uuid"
)

// ExposureReport is the terminal artifact of one profile scan.
// It accumulates every exposure signal discovered for a single subject:
// geotagged events, PII found in the biography, and tagged-user occurrences.
//
// The report is append-only while the scan pipeline runs and must be treated
// as immutable once Finalize has been called and the report returned to the
// caller. Each sequence preserves discovery order (posts in source order,
// then media in listing order); the order carries no semantic ranking but
// makes reports reproducible.
//
// Design decision: We keep the scan's working inputs (posts, media
// references, biography) on the report itself, excluded from JSON, rather
// than threading them through every pipeline step. This mirrors how the rest
// of the codebase passes accumulated state between steps and keeps step
// signatures stable when new inputs are added.
type ExposureReport struct {
	// Subject is the scanned profile's handle.
	Subject Handle `json:"subject"`

	// ScanID uniquely identifies this scan invocation.
	ScanID string `json:"scan_id"`

	// DateScanned is the timestamp when the scan was performed.
	DateScanned time.Time `json:"date_scanned"`

	// === Exposure events, in discovery order ===

	// GeotagEvents are location exposures: named post geotags and precise
	// EXIF coordinates recovered from downloaded media.
	GeotagEvents []GeotagEvent `json:"geotag_events,omitempty"`

	// PIIFindings are PII occurrences detected in the biography text.
	PIIFindings []PIIFinding `json:"pii_findings,omitempty"`

	// TaggedUserEvents are tagged-user occurrences, one per occurrence.
	TaggedUserEvents []TaggedUser `json:"tagged_user_events,omitempty"`

	// Findings is the presentation-level view of all exposure events with
	// severity assessments, used by the report writers.
	Findings []Finding `json:"findings,omitempty"`

	// === Scan statistics ===

	// PostsScanned is the number of posts successfully processed.
	PostsScanned int `json:"posts_scanned"`

	// PostsSkipped is the number of posts skipped as malformed.
	PostsSkipped int `json:"posts_skipped,omitempty"`

	// MediaScanned is the number of media files successfully processed.
	MediaScanned int `json:"media_scanned"`

	// MediaSkipped is the number of media files with unreadable metadata.
	MediaSkipped int `json:"media_skipped,omitempty"`

	// NotFound is true when the profile did not exist or had no content.
	// The report is still well-formed, just empty.
	NotFound bool `json:"not_found,omitempty"`

	// === Scan-scoped inputs (populated by the pipeline, never serialized) ===

	// Posts holds the post records being scanned.
	Posts []*PostRecord `json:"-"`

	// Media holds the media references being scanned.
	Media []*MediaReference `json:"-"`

	// Biography is the profile's biography text.
	Biography string `json:"-"`

	// === Scan state ===

	// PerformedSteps lists the pipeline steps that were executed.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error contains any error that occurred during scanning.
	Error error `json:"-"` // Excluded from JSON

	// ErrorMessage is the string representation of Error for serialization.
	ErrorMessage string `json:"error,omitempty"` //nolint:tagliatelle // error is conventional

	// Summary contains the summarized findings for human-readable output.
	// Populated by Finalize.
	Summary *Summary `json:"summary,omitempty"`
}

// GeotagEvent is one location exposure discovered during a scan.
type GeotagEvent struct {
	// Source locates where the exposure came from: a post ID or a media
	// file path.
	Source string `json:"source"`

	// Location is the human-readable location: a platform location name or
	// a map-service link for precise coordinates.
	Location string `json:"location"`

	// Latitude and Longitude are set only when Precise is true.
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`

	// Precise is true when the event carries decoded EXIF coordinates
	// rather than a platform-supplied place name.
	Precise bool `json:"precise"`
}

// NewExposureReport creates a new, empty report for the given subject.
func NewExposureReport(subject Handle) *ExposureReport {
	return &ExposureReport{
		Subject:     subject,
		ScanID:      uuid.NewString(),
		DateScanned: time.Now(),
	}
}

// AddGeotagEvent appends a location exposure in discovery order.
func (r *ExposureReport) AddGeotagEvent(ev GeotagEvent) {
	r.GeotagEvents = append(r.GeotagEvents, ev)
}

// AddPIIFinding appends a PII occurrence in discovery order.
func (r *ExposureReport) AddPIIFinding(f PIIFinding) {
	r.PIIFindings = append(r.PIIFindings, f)
}

// AddTaggedUser appends a tagged-user occurrence in discovery order.
// Duplicates are kept: each occurrence is a separate exposure event.
func (r *ExposureReport) AddTaggedUser(u TaggedUser) {
	r.TaggedUserEvents = append(r.TaggedUserEvents, u)
}

// AddFinding appends a presentation-level finding.
// Unlike deduplicating scanners, SocialShield keeps every occurrence: the
// report counts exposure instances, and the same value appearing twice is
// twice the exposure.
func (r *ExposureReport) AddFinding(f Finding) {
	if f.SeverityText == "" {
		f.SeverityText = f.Severity.String()
	}
	r.Findings = append(r.Findings, f)
}

// SetError records a scan error on the report for serialization.
func (r *ExposureReport) SetError(err error) {
	r.Error = err
	if err != nil {
		r.ErrorMessage = err.Error()
	}
}

// Finalize builds the summary and marks the report complete.
// After Finalize the report must not be modified.
func (r *ExposureReport) Finalize() {
	r.Summary = NewSummary(r)
}
