package commands

import (
	"io"
	"os"

	"github.com/simonhull/firebird-suite/conflict"
	"github.com/simonhull/firebird-suite/conflict/internal/config"
	"github.com/simonhull/firebird-suite/conflict/output"
	"github.com/spf13/cobra"
)

var (
	// exit ends the process. Replaced in tests.
	exit = os.Exit

	// stdin feeds the conflict prompters.
	stdin io.Reader = os.Stdin
)

// RootCmd creates and returns the root command for the conflict CLI
func RootCmd() *cobra.Command {
	var verbose, quiet bool

	cmd := &cobra.Command{
		Use:   "conflict",
		Short: "Copy generated files into a directory, asking before overwriting",
		Long: `conflict copies files from a staging directory into a destination and
asks what to do whenever a file would overwrite different content.

For each conflicting file you can:
• replace it, or keep the existing one
• replace it and every following file without asking again
• look at the differences first
• abort, leaving the destination untouched

Identical files are skipped and new files are written without asking.`,
		Version:       conflict.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
			output.SetQuiet(quiet)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print prompts and errors")
	cmd.PersistentFlags().String("config", "", "Config file (default: ./"+config.FileName+")")

	return cmd
}
