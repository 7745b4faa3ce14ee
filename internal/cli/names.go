package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/rfield/internal/config"
	"github.com/born-ml/rfield/internal/field"
)

// NamesOptions holds flags for the names command.
type NamesOptions struct {
	*RootOptions
}

// NewNamesCommand creates the names command.
func NewNamesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NamesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "names <model.yaml>",
		Short: "List layer paths in analysis order",
		Long: `Names prints the dotted path of every layer in the order the analysis
visits them. The first line is the root, whose path is empty.

Example:
  rfield names models/alexnet.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNames(opts, args[0], cmd)
		},
	}

	return cmd
}

func runNames(opts *NamesOptions, path string, cmd *cobra.Command) error {
	configureLogging(opts.RootOptions)

	model, err := config.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range field.LayerNames(model.Build()) {
		fmt.Fprintln(out, name)
	}
	return nil
}
