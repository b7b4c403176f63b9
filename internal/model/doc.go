// Package model defines the core data structures used throughout SocialShield.
//
// This package contains the following main types:
//   - Handle: A validated, normalized social-media account identifier
//   - PostRecord: A single post's nested metadata document
//   - GPSRecord: An all-or-nothing EXIF GPS coordinate set
//   - ExposureReport: The main scan result structure
//   - Summary: A summarized, human-readable report
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (source, exposure, report) need to use these
// types, so centralizing them prevents import cycles.
//
// Every entity here is scoped to a single profile scan. Nothing outlives the
// call that produces the ExposureReport; there is no cross-scan cache or
// shared mutable state.
package model
