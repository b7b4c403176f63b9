package config

// ProfileConfig holds per-handle configuration for a single account.
// This allows tuning scan behavior for individual profiles.
type ProfileConfig struct {
	// Language overrides the global language code for this profile.
	// Useful for accounts whose biography is written in another language.
	Language string `yaml:"language,omitempty"`

	// SkipEXIF disables media metadata scanning for this profile.
	SkipEXIF bool `yaml:"skipExif,omitempty"`

	// SkipPII disables biography PII scanning for this profile.
	SkipPII bool `yaml:"skipPii,omitempty"`

	// IgnoreEntities lists classifier entity labels whose findings are
	// suppressed for this profile (e.g., "PHONE" for a business account
	// that publishes its number on purpose).
	IgnoreEntities []string `yaml:"ignoreEntities,omitempty"`
}

// File represents the structure of the .socialshield configuration file.
type File struct {
	// Profiles maps handles to their per-handle configurations.
	// Keys should be the bare handle without an @ prefix.
	Profiles map[string]ProfileConfig `yaml:"profiles,omitempty"`

	// Defaults contains default profile configuration applied to all
	// handles unless overridden in the per-handle configuration.
	Defaults ProfileConfig `yaml:"defaults,omitempty"`
}

// GetProfileConfig returns the configuration for a specific handle.
// It merges the per-handle configuration with defaults.
func (cf *File) GetProfileConfig(handle string) ProfileConfig {
	// Start with defaults
	result := cf.Defaults

	// Override with per-handle configuration if present
	if pc, ok := cf.Profiles[handle]; ok {
		if pc.Language != "" {
			result.Language = pc.Language
		}
		if pc.SkipEXIF {
			result.SkipEXIF = true
		}
		if pc.SkipPII {
			result.SkipPII = true
		}
		if len(pc.IgnoreEntities) > 0 {
			result.IgnoreEntities = pc.IgnoreEntities
		}
	}

	return result
}
