// Package cli implements the dominopress command-line interface.
//
// The main commands are:
//   - generate: sample codes and render printable sheets
//   - codes: inspect the valid code population
//   - media: list built-in and user media presets
//   - preview: browse generated sheets in the terminal
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context so helpers can report structured
// progress without global state.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dominopress/dominopress/pkg/buildinfo"
)

// appName is the application name used for display and file names.
const appName = "dominopress"

// Execute runs the dominopress CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to
// debug. The logger is attached to the command context and accessible
// to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the root command with all subcommands registered.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Dominopress prints 16-bit codes as domino tiles",
		Long:         `Dominopress samples unique 16-bit codes, draws each one as a pip pattern on a domino-shaped tile, and lays the tiles out on printable pages or strips.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCodesCmd())
	root.AddCommand(newMediaCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newCompletionCmd())

	return root
}
