// Package cli implements docctl, the operator tool for the document pipeline.
// Each subcommand runs one pipeline stage locally against files on disk, plus
// the Record Store migration.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "docctl",
	Short:         "Inspect and prepare PDF documents for the document admin service",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with os.Args.
func Execute() error {
	return rootCmd.Execute()
}
