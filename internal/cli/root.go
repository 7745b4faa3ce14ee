// Package cli implements the rfield command line interface.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// version is stamped manually on release.
const version = "v0.1.0-dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the rfield CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rfield",
		Short: "Receptive field analysis for convolutional networks",
		Long: `rfield computes per-layer receptive field statistics for feed-forward
convolutional networks described in YAML model files.

For every layer it reports the spatial output shape, the receptive field
size, the distance between adjacent output centers (jump), and the input
coordinates of the first output center (origin).`,
		Version: version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewNamesCommand(opts))

	return cmd
}

// configureLogging routes log output to stderr, at debug level when
// verbose is set.
func configureLogging(opts *RootOptions) {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
