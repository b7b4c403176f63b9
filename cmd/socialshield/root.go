// Package main provides the entry point for the SocialShield CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for SocialShield.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "socialshield",
		Short: "Privacy auditing tool for social media profiles",
		Long: `SocialShield is a privacy auditing tool for social media profiles.
It scans downloaded profile archives and reports what an account reveals:
GPS coordinates hidden in photo metadata, personal information in the
biography, geotagged posts, and the people tagged alongside the account.

Profiles are read from an archive directory produced by a profile
download tool, with one subdirectory per handle.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
