package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"golang.org/x/text/language"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "socialshield"

	// DefaultLanguage is the language code handed to the PII classifier
	// when the user does not specify one. The code is passed through
	// opaquely; validation only checks that it parses as a BCP 47 tag.
	DefaultLanguage = "en"

	// DefaultBatchSize of 10 concurrent scans balances throughput with
	// resource usage. Scans are disk and CPU bound, so higher values
	// mostly increase memory pressure from decoded media.
	DefaultBatchSize = 10

	// DefaultMaxMediaSize limits how much of a media file is read when
	// extracting metadata. 20MB covers the large end of phone camera
	// output while preventing memory exhaustion from mislabeled files.
	DefaultMaxMediaSize = 20 * 1024 * 1024 // 20MB
)

// Config holds all configuration options for SocialShield.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ScanConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// ArchiveDir is the root of the downloaded-profile archive, with one
	// subdirectory per handle. Required for scanning.
	ArchiveDir string

	// Language is the language code handed to the PII classifier.
	// Defaults to DefaultLanguage when empty.
	Language string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent scans when processing
	// multiple handles.
	BatchSize int

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// Handles is the list of account handles to scan.
	// Must contain at least one handle.
	Handles []string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .socialshield in the current
	// directory and then in the user's home directory.
	ConfigFilePath string

	// ProfileConfigs holds per-handle configurations loaded from the
	// config file. This is populated by LoadConfigFile and used during
	// scanning.
	ProfileConfigs *File

	// EnableEXIF controls whether media files are scanned for EXIF
	// exposure. Enabled by default; disable to speed up scans of
	// archives without media.
	EnableEXIF bool

	// EnablePII controls whether the biography is scanned for PII.
	EnablePII bool

	// MaxMediaSize is the maximum media file size in bytes to read when
	// extracting metadata. Set to 0 to use the default (20MB).
	MaxMediaSize int64
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., batch size,
// analyzer toggles). This also serves as documentation of what the
// defaults are.
func NewConfig() *Config {
	return &Config{
		Language:     DefaultLanguage,
		BatchSize:    DefaultBatchSize,
		EnableEXIF:   true,
		EnablePII:    true,
		MaxMediaSize: DefaultMaxMediaSize,
	}
}

// XDGDataDir returns the XDG data directory for SocialShield.
// On Linux: ~/.local/share/socialshield
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for SocialShield.
// On Linux: ~/.config/socialshield
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for SocialShield.
// On Linux: ~/.cache/socialshield
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any scanning begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have at least one handle to scan
	if len(c.Handles) == 0 {
		return ErrNoHandle
	}

	// The archive directory is the only data source
	if c.ArchiveDir == "" {
		return ErrNoArchiveDir
	}

	// BatchSize must be positive; zero would mean no scanning
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// MaxMediaSize must be non-negative; zero means default
	if c.MaxMediaSize < 0 {
		return ErrInvalidMaxMediaSize
	}

	// The language code must at least be a well-formed BCP 47 tag.
	// The classifier decides what to do with it.
	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			return ErrInvalidLanguage
		}
	}

	return nil
}
