package config

import (
	"errors"
	"strings"
	"testing"
)

// TestNewConfig tests that the constructor sets sensible defaults.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.Language != DefaultLanguage {
		t.Errorf("Language = %q, want %q", cfg.Language, DefaultLanguage)
	}
	if cfg.BatchSize != DefaultBatchSize {
		t.Errorf("BatchSize = %d, want %d", cfg.BatchSize, DefaultBatchSize)
	}
	if !cfg.EnableEXIF {
		t.Error("EnableEXIF must default to true")
	}
	if !cfg.EnablePII {
		t.Error("EnablePII must default to true")
	}
	if cfg.MaxMediaSize != DefaultMaxMediaSize {
		t.Errorf("MaxMediaSize = %d, want %d", cfg.MaxMediaSize, DefaultMaxMediaSize)
	}
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := NewConfig()
		cfg.Handles = []string{"jane"}
		cfg.ArchiveDir = "/var/archive"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config passes",
			mutate:  func(_ *Config) {},
			wantErr: nil,
		},
		{
			name:    "no handles",
			mutate:  func(c *Config) { c.Handles = nil },
			wantErr: ErrNoHandle,
		},
		{
			name:    "no archive directory",
			mutate:  func(c *Config) { c.ArchiveDir = "" },
			wantErr: ErrNoArchiveDir,
		},
		{
			name:    "zero batch size",
			mutate:  func(c *Config) { c.BatchSize = 0 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name:    "negative batch size",
			mutate:  func(c *Config) { c.BatchSize = -1 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name: "conflicting report formats",
			mutate: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{
			name:    "negative max media size",
			mutate:  func(c *Config) { c.MaxMediaSize = -1 },
			wantErr: ErrInvalidMaxMediaSize,
		},
		{
			name:    "malformed language tag",
			mutate:  func(c *Config) { c.Language = "not a tag!" },
			wantErr: ErrInvalidLanguage,
		},
		{
			name:    "regional language tag accepted",
			mutate:  func(c *Config) { c.Language = "pt-BR" },
			wantErr: nil,
		},
		{
			name:    "empty language falls through",
			mutate:  func(c *Config) { c.Language = "" },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestXDGDirs tests that XDG paths include the application name.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	for name, dir := range map[string]string{
		"data":   XDGDataDir(),
		"config": XDGConfigDir(),
		"cache":  XDGCacheDir(),
	} {
		if !strings.Contains(dir, AppName) {
			t.Errorf("%s dir %q must contain %q", name, dir, AppName)
		}
	}
}
