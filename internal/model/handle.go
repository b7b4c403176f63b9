package model

import (
	"encoding/json"
	"errors"
	"strings"
)

// Handle errors.
var (
	// ErrEmptyHandle is returned when the handle is empty after normalization.
	ErrEmptyHandle = errors.New("handle cannot be empty")
	// ErrInvalidHandle is returned when the handle contains invalid characters.
	ErrInvalidHandle = errors.New("invalid handle format")
)

// maxHandleLength is the longest handle accepted by the major platforms.
const maxHandleLength = 30

// Handle is an immutable value object representing a platform account
// identifier. It is normalized (lowercased, leading "@" and profile-URL
// prefixes stripped) so that the same account always produces the same
// Handle regardless of how the user typed it.
type Handle struct {
	name string
}

// NewHandle creates a new Handle from a raw string.
// It accepts bare names ("alice"), mention syntax ("@alice"), and profile
// URLs ("https://instagram.com/alice/"). Returns an error if the normalized
// result is empty or contains characters no platform allows.
func NewHandle(raw string) (Handle, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	// Strip URL forms down to the path's first segment.
	for _, prefix := range []string{"https://", "http://"} {
		if rest, ok := strings.CutPrefix(normalized, prefix); ok {
			if _, path, found := strings.Cut(rest, "/"); found {
				normalized = path
			} else {
				normalized = ""
			}
			break
		}
	}
	normalized = strings.TrimPrefix(normalized, "@")
	normalized = strings.Trim(normalized, "/")
	if i := strings.IndexByte(normalized, '/'); i >= 0 {
		normalized = normalized[:i]
	}

	if normalized == "" {
		return Handle{}, ErrEmptyHandle
	}
	if len(normalized) > maxHandleLength || !validHandleChars(normalized) {
		return Handle{}, ErrInvalidHandle
	}

	return Handle{name: normalized}, nil
}

// MustNewHandle creates a new Handle or panics if invalid.
// Use only for known-valid handles in tests or initialization.
func MustNewHandle(raw string) Handle {
	h, err := NewHandle(raw)
	if err != nil {
		panic(err)
	}
	return h
}

// validHandleChars reports whether every rune is in the character set shared
// by the major platforms: lowercase letters, digits, '.', '_', and '-'.
func validHandleChars(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

// String returns the normalized handle name.
func (h Handle) String() string {
	return h.name
}

// MarshalJSON renders the handle as its bare normalized name.
func (h Handle) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.name)
}

// UnmarshalJSON parses and re-validates a handle from JSON.
func (h *Handle) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewHandle(raw)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// IsZero reports whether the Handle is the zero value.
func (h Handle) IsZero() bool {
	return h.name == ""
}
