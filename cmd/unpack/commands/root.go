// Package commands provides the CLI commands for the unpack tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unpack",
	Short: "Sequence destructuring from the command line",
	Long: `unpack matches ordered values against a destructuring pattern: a fixed
prefix, at most one variable-length middle, and a fixed suffix.

This tool provides:
  - One-off matching of argument values against a pattern
  - Batch execution of YAML case files

Usage:
  unpack match "a, b, *c, d, e" 0 1 2 3 4 5 6 7
  unpack run cases.yaml
  unpack version`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
