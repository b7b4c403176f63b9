// Package pipeline orchestrates exposure scans.
//
// A scan is a sequence of steps executed against a single report: load the
// profile, collect post exposure, collect media exposure, scan the
// biography. Steps tolerate per-item failures (a post or media file that
// cannot be processed is counted and skipped) but surface structural
// failures such as classifier span violations.
//
// BatchProcessor runs many scans concurrently while preserving input
// order, and the aggregate helpers build complete reports in one call.
package pipeline
