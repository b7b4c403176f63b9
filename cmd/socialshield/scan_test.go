package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/socialshield/socialshield/internal/config"
)

func runScanCommand(t *testing.T, args ...string) error {
	t.Helper()

	cmd := NewScanCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// TestBuildConfig tests flag-to-config mapping.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("maps all flags", func(t *testing.T) {
		t.Parallel()

		cmd := NewScanCmd()
		if err := cmd.ParseFlags([]string{
			"-d", "/var/archive",
			"-L", "pt-BR",
			"--no-exif",
			"--max-media-size", "1024",
			"-b", "4",
			"-j",
			"-o", "report.json",
		}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"jane", "bob"})
		if err != nil {
			t.Fatalf("buildConfig() error = %v", err)
		}

		if cfg.ArchiveDir != "/var/archive" {
			t.Errorf("ArchiveDir = %q", cfg.ArchiveDir)
		}
		if cfg.Language != "pt-BR" {
			t.Errorf("Language = %q", cfg.Language)
		}
		if cfg.EnableEXIF {
			t.Error("EnableEXIF must be false with --no-exif")
		}
		if !cfg.EnablePII {
			t.Error("EnablePII must stay true")
		}
		if cfg.MaxMediaSize != 1024 {
			t.Errorf("MaxMediaSize = %d", cfg.MaxMediaSize)
		}
		if cfg.BatchSize != 4 {
			t.Errorf("BatchSize = %d", cfg.BatchSize)
		}
		if !cfg.JSONReport || cfg.MarkdownReport {
			t.Error("report format flags mismapped")
		}
		if cfg.ReportFile != "report.json" {
			t.Errorf("ReportFile = %q", cfg.ReportFile)
		}
		if len(cfg.Handles) != 2 {
			t.Errorf("Handles = %v", cfg.Handles)
		}
		if cfg.ProfileConfigs == nil {
			t.Error("ProfileConfigs must be initialized")
		}
	})

	t.Run("defaults apply without flags", func(t *testing.T) {
		t.Parallel()

		cmd := NewScanCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"jane"})
		if err != nil {
			t.Fatalf("buildConfig() error = %v", err)
		}

		if cfg.BatchSize != config.DefaultBatchSize {
			t.Errorf("BatchSize = %d, want %d", cfg.BatchSize, config.DefaultBatchSize)
		}
		if cfg.Language != config.DefaultLanguage {
			t.Errorf("Language = %q, want %q", cfg.Language, config.DefaultLanguage)
		}
		if cfg.MaxMediaSize != config.DefaultMaxMediaSize {
			t.Errorf("MaxMediaSize = %d, want %d", cfg.MaxMediaSize, config.DefaultMaxMediaSize)
		}
	})

	t.Run("missing explicit config file fails", func(t *testing.T) {
		t.Parallel()

		cmd := NewScanCmd()
		if err := cmd.ParseFlags([]string{
			"-c", filepath.Join(t.TempDir(), "nope.yaml"),
		}); err != nil {
			t.Fatal(err)
		}

		if _, err := buildConfig(cmd, []string{"jane"}); err == nil {
			t.Error("buildConfig() must fail for a missing explicit config file")
		}
	})

	t.Run("explicit config file is loaded", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "conf.yaml")
		content := "profiles:\n  jane:\n    language: pt-BR\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		cmd := NewScanCmd()
		if err := cmd.ParseFlags([]string{"-c", path}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"jane"})
		if err != nil {
			t.Fatalf("buildConfig() error = %v", err)
		}

		pc := cfg.ProfileConfigs.GetProfileConfig("jane")
		if pc.Language != "pt-BR" {
			t.Errorf("jane's language = %q, want pt-BR", pc.Language)
		}
	})

	t.Run("list file supplies additional handles", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "handles.txt")
		if err := os.WriteFile(path, []byte("bob\ncarol\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		cmd := NewScanCmd()
		if err := cmd.ParseFlags([]string{"-l", path}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"jane"})
		if err != nil {
			t.Fatalf("buildConfig() error = %v", err)
		}

		want := []string{"jane", "bob", "carol"}
		if len(cfg.Handles) != len(want) {
			t.Fatalf("Handles = %v, want %v", cfg.Handles, want)
		}
		for i, h := range want {
			if cfg.Handles[i] != h {
				t.Errorf("Handles[%d] = %q, want %q", i, cfg.Handles[i], h)
			}
		}
	})
}

// TestReadHandleList tests handle list parsing.
func TestReadHandleList(t *testing.T) {
	t.Parallel()

	t.Run("skips blanks and comments", func(t *testing.T) {
		t.Parallel()

		content := "# team accounts\njane\n\n  bob  \n# disabled\n#carol\n"
		path := filepath.Join(t.TempDir(), "handles.txt")
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		handles, err := readHandleList(path)
		if err != nil {
			t.Fatalf("readHandleList() error = %v", err)
		}

		want := []string{"jane", "bob"}
		if len(handles) != len(want) {
			t.Fatalf("handles = %v, want %v", handles, want)
		}
		for i, h := range want {
			if handles[i] != h {
				t.Errorf("handles[%d] = %q, want %q", i, handles[i], h)
			}
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()

		if _, err := readHandleList(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("readHandleList() must fail for a missing file")
		}
	})
}

// TestScanCmdValidation tests configuration validation surfacing.
func TestScanCmdValidation(t *testing.T) {
	t.Parallel()

	t.Run("no handles fails", func(t *testing.T) {
		t.Parallel()

		err := runScanCommand(t, "-d", t.TempDir())
		if err == nil || !strings.Contains(err.Error(), "configuration error") {
			t.Errorf("error = %v, want a configuration error", err)
		}
	})

	t.Run("no archive directory fails", func(t *testing.T) {
		t.Parallel()

		err := runScanCommand(t, "jane")
		if err == nil || !strings.Contains(err.Error(), "configuration error") {
			t.Errorf("error = %v, want a configuration error", err)
		}
	})

	t.Run("invalid handle fails fast", func(t *testing.T) {
		t.Parallel()

		err := runScanCommand(t, "-d", t.TempDir(), "has spaces")
		if err == nil || !strings.Contains(err.Error(), "invalid handle") {
			t.Errorf("error = %v, want an invalid handle error", err)
		}
	})
}

// TestScanCmdEndToEnd tests a full scan against a small archive.
func TestScanCmdEndToEnd(t *testing.T) {
	t.Parallel()

	archive := t.TempDir()
	profileDir := filepath.Join(archive, "jane")
	if err := os.MkdirAll(profileDir, 0o750); err != nil {
		t.Fatal(err)
	}
	bio := "photographer, bookings: jane@example.com"
	if err := os.WriteFile(filepath.Join(profileDir, "biography.txt"), []byte(bio), 0o600); err != nil {
		t.Fatal(err)
	}
	post := `{"id": "p1", "location": {"name": "Lisbon"}}`
	if err := os.WriteFile(filepath.Join(profileDir, "p1.json"), []byte(post), 0o600); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(t.TempDir(), "reports", "jane.json")
	if err := runScanCommand(t, "-d", archive, "-j", "-o", outPath, "jane"); err != nil {
		t.Fatalf("scan error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}

	var decoded struct {
		Subject      string `json:"subject"`
		GeotagEvents []struct {
			Location string `json:"location"`
		} `json:"geotag_events"`
		Summary struct {
			PIICount    int `json:"pii_count"`
			GeotagCount int `json:"geotag_count"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}

	if decoded.Subject != "jane" {
		t.Errorf("subject = %q, want jane", decoded.Subject)
	}
	if decoded.Summary.GeotagCount != 1 || len(decoded.GeotagEvents) != 1 {
		t.Errorf("geotag counts = %d/%d, want 1/1", decoded.Summary.GeotagCount, len(decoded.GeotagEvents))
	}
	if decoded.GeotagEvents[0].Location != "Lisbon" {
		t.Errorf("location = %q, want Lisbon", decoded.GeotagEvents[0].Location)
	}
	if decoded.Summary.PIICount != 1 {
		t.Errorf("PIICount = %d, want 1", decoded.Summary.PIICount)
	}

	// A second handle that has no archive directory still gets a report
	outPath2 := filepath.Join(t.TempDir(), "ghost.json")
	if err := runScanCommand(t, "-d", archive, "-j", "-o", outPath2, "ghost"); err != nil {
		t.Fatalf("scan error = %v", err)
	}
	data2, err := os.ReadFile(outPath2)
	if err != nil {
		t.Fatal(err)
	}
	var ghost struct {
		NotFound bool `json:"not_found"`
	}
	if err := json.Unmarshal(data2, &ghost); err != nil {
		t.Fatal(err)
	}
	if !ghost.NotFound {
		t.Error("ghost's report must be marked not found")
	}
}
