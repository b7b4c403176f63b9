package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoHandle is returned when no account handle is specified.
	// This error occurs when neither --list nor a positional argument
	// provides a handle.
	ErrNoHandle = errors.New("no handle specified: provide an account handle or use --list")

	// ErrNoArchiveDir is returned when the archive directory is not set.
	// Without it there is no profile data to scan.
	ErrNoArchiveDir = errors.New("no archive directory specified: use --dir to point at the downloaded profiles")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent scans, effectively
	// stopping the scanning process.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxMediaSize is returned when the max media size is negative.
	// A negative size is invalid; use 0 to use the default limit.
	ErrInvalidMaxMediaSize = errors.New("invalid max media size: must be non-negative")

	// ErrInvalidLanguage is returned when the language code does not parse
	// as a BCP 47 tag.
	ErrInvalidLanguage = errors.New("invalid language: must be a BCP 47 language tag such as en or pt-BR")
)
