// Package config provides configuration structures and utilities for
// SocialShield. It defines the main configuration options for exposure
// scanning, archive locations, and report generation preferences.
package config
