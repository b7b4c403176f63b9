// Package exposure provides the exposure-signal analyzers for profile scans.
//
// # Purpose
//
// This package derives exposure events from a profile's already-fetched
// data: precise GPS coordinates from media EXIF metadata, named geotags and
// tagged-user relationships from nested post documents, and PII occurrences
// from biography text.
//
// # Design Philosophy
//
// Each signal type is implemented as a separate analyzer operating on the
// accumulating ExposureReport. This design was chosen because:
//  1. Each signal has unique input data and failure modes
//  2. Enables selective scanning based on configuration
//  3. Makes it easy to add new signals without modifying existing code
//  4. Simplifies testing of individual analysis components
//
// # Failure semantics
//
// Per-item problems (an unreadable image, a malformed post document) never
// abort a scan: the item is skipped, counted, and logged, and analysis
// continues. The single exception is a PII classifier returning a span
// outside the scanned text's bounds, which indicates a broken collaborator
// and is surfaced to the caller as a fatal integration error.
//
// Every lookup into an externally supplied nested document is a total
// function returning an explicit absent result, never a fault.
package exposure
