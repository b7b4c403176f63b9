// Package main provides the entry point for the SocialShield CLI.
//
// SocialShield is a privacy auditing tool for social media profiles.
// It scans downloaded profile archives for location exposure, personal
// information in biographies, and tagged-user exposure.
//
// Usage:
//
//	socialshield scan --dir ./archive <handle>
//	socialshield scan --dir ./archive --list <file>
//
// See --help for all available options.
package main

// main is the entry point for SocialShield.
func main() {
	Execute()
}
