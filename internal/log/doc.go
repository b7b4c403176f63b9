// Package log provides secure logging functionality with automatic
// sanitization of personal information, built on top of the standard slog
// package.
//
// This package extends slog to provide:
//   - Automatic sanitization of personal values (biographies, matched PII)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Privacy Features
//
// A tool that hunts for exposed personal data must not leak that data
// through its own logs. The SecureHandler automatically sanitizes:
//   - Attribute keys that carry profile text (biography, caption,
//     matched_text) or credentials (password, token, session)
//   - Values that look like email addresses, phone numbers, or national
//     identification numbers, regardless of key name
//   - Bearer tokens and JWTs from any API plumbing
//
// Even in verbose mode, these values are masked so that logs can be
// shared or stored without re-exposing what the scan found.
//
// # Usage
//
//	// Create a secure logger
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("biography scanned",
//	    "matched_text", "jane@example.com", // Will be masked
//	    "handle", "traveller_jane",
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
