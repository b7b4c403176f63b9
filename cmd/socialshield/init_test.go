package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func runInit(t *testing.T, args ...string) error {
	t.Helper()

	cmd := NewInitCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// TestInitCmd tests configuration file generation.
func TestInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates a valid YAML config", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), configFileName)
		if err := runInit(t, "-o", path); err != nil {
			t.Fatalf("init error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("config file not created: %v", err)
		}

		var parsed map[string]any
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			t.Fatalf("generated config is not valid YAML: %v", err)
		}
		if !strings.Contains(string(data), "profiles") {
			t.Error("template must document the profiles section")
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
		}
	})

	t.Run("refuses to overwrite an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), configFileName)
		if err := os.WriteFile(path, []byte("existing"), 0o600); err != nil {
			t.Fatal(err)
		}

		err := runInit(t, "-o", path)
		if err == nil {
			t.Fatal("init must refuse to overwrite without -f")
		}
		if !strings.Contains(err.Error(), "already exists") {
			t.Errorf("error = %v", err)
		}

		data, _ := os.ReadFile(path)
		if string(data) != "existing" {
			t.Error("existing file must be untouched")
		}
	})

	t.Run("force overwrites an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), configFileName)
		if err := os.WriteFile(path, []byte("existing"), 0o600); err != nil {
			t.Fatal(err)
		}

		if err := runInit(t, "-o", path, "-f"); err != nil {
			t.Fatalf("init -f error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) == "existing" {
			t.Error("file must be overwritten with -f")
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", configFileName)
		if err := runInit(t, "-o", path); err != nil {
			t.Fatalf("init error = %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Errorf("config file not created in nested dir: %v", err)
		}
	})
}
