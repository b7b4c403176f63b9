package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewSecureHandler(handler))
}

// TestSecureHandlerKeyMasking tests masking by attribute key.
func TestSecureHandlerKeyMasking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		want bool // want masked
	}{
		{name: "biography is profile content", key: "biography", want: true},
		{name: "bio shorthand", key: "bio", want: true},
		{name: "caption is profile content", key: "caption", want: true},
		{name: "matched_text carries PII", key: "matched_text", want: true},
		{name: "full_name is profile content", key: "full_name", want: true},
		{name: "password", key: "password", want: true},
		{name: "token", key: "token", want: true},
		{name: "keyword match in longer key", key: "user_password_hash", want: true},
		{name: "plain key passes through", key: "handle_count", want: false},
		{name: "monkey is not a key", key: "monkey", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := newTestLogger(&buf)
			logger.Info("test", tt.key, "plain value 42")

			output := buf.String()
			masked := strings.Contains(output, MaskValue)
			if masked != tt.want {
				t.Errorf("key %q: masked = %v, want %v\noutput: %s", tt.key, masked, tt.want, output)
			}
			if tt.want && strings.Contains(output, "plain value 42") {
				t.Errorf("key %q: original value leaked\noutput: %s", tt.key, output)
			}
		})
	}
}

// TestSecureHandlerValueMasking tests masking by value pattern.
func TestSecureHandlerValueMasking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "email address", value: "jane.doe@example.com", want: true},
		{name: "social security number", value: "078-05-1120", want: true},
		{name: "phone number", value: "+49 30 901820", want: true},
		{name: "JWT", value: "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.abc123", want: true},
		{name: "bearer token", value: "Bearer abc123def", want: true},
		{name: "basic auth", value: "Basic dXNlcjpwYXNz", want: true},
		{name: "plain text", value: "scanning archive", want: false},
		{name: "short number", value: "42", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := newTestLogger(&buf)
			logger.Info("test", "detail", tt.value)

			output := buf.String()
			masked := strings.Contains(output, MaskValue)
			if masked != tt.want {
				t.Errorf("value %q: masked = %v, want %v\noutput: %s", tt.value, masked, tt.want, output)
			}
		})
	}
}

// TestSecureHandlerGroups tests that group attributes are sanitized recursively.
func TestSecureHandlerGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Info("test",
		slog.Group("profile",
			slog.String("handle", "jane"),
			slog.String("biography", "call me at 212-555-0187"),
		),
	)

	output := buf.String()
	if !strings.Contains(output, MaskValue) {
		t.Errorf("group member must be masked\noutput: %s", output)
	}
	if strings.Contains(output, "212-555-0187") {
		t.Errorf("biography leaked through group\noutput: %s", output)
	}
	if !strings.Contains(output, "jane") {
		t.Errorf("non-sensitive group member must survive\noutput: %s", output)
	}
}

// TestSecureHandlerWithAttrs tests that pre-bound attributes are sanitized.
func TestSecureHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newTestLogger(&buf).With("session_id", "abc-123-def")

	logger.Info("test")

	output := buf.String()
	if !strings.Contains(output, MaskValue) {
		t.Errorf("bound attribute must be masked\noutput: %s", output)
	}
	if strings.Contains(output, "abc-123-def") {
		t.Errorf("session id leaked\noutput: %s", output)
	}
}

// TestSecureHandlerEnabled tests level delegation to the inner handler.
func TestSecureHandlerEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	h := NewSecureHandler(inner)

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug must be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error must be enabled at warn level")
	}
}

// TestNewSecureLogger tests the convenience constructors.
func TestNewSecureLogger(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)

		logger.Info("hidden")
		logger.Warn("visible")

		output := buf.String()
		if strings.Contains(output, "hidden") {
			t.Error("info must be suppressed without verbose")
		}
		if !strings.Contains(output, "visible") {
			t.Error("warn must pass through")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, true)

		logger.Debug("detail")

		if !strings.Contains(buf.String(), "detail") {
			t.Error("debug must pass through with verbose")
		}
	})

	t.Run("JSON logger emits JSON with masking", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureJSONLogger(&buf, true)

		logger.Warn("test", "password", "hunter2")

		output := buf.String()
		if !strings.HasPrefix(strings.TrimSpace(output), "{") {
			t.Errorf("output is not JSON: %s", output)
		}
		if strings.Contains(output, "hunter2") {
			t.Errorf("password leaked\noutput: %s", output)
		}
	})
}
