package cli

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/rfield/internal/config"
	"github.com/born-ml/rfield/internal/field"
)

// TableOptions holds flags for the table command.
type TableOptions struct {
	*RootOptions
	InputShape string
	MaxDepth   int
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TableOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "table <model.yaml>",
		Short: "Print per-layer receptive field statistics",
		Long: `Table loads a model file, runs the receptive field analysis, and prints
one row per layer: output shape, origin, jump, and receptive field size.

Container rows group their children and carry no numbers of their own.
Use --max-depth to fold deep submodules into their ancestors.

Example:
  rfield table models/alexnet.yaml
  rfield table models/alexnet.yaml --input-shape 224x224
  rfield table models/alexnet.yaml --max-depth 1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.InputShape, "input-shape", "", "input shape HxW, overriding the model file")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", -1, "fold layers deeper than this depth (negative keeps the full tree)")

	return cmd
}

func runTable(opts *TableOptions, path string, cmd *cobra.Command) error {
	configureLogging(opts.RootOptions)

	model, err := config.Load(path)
	if err != nil {
		return err
	}

	shape := model.Shape()
	if opts.InputShape != "" {
		shape, err = parseShape(opts.InputShape)
		if err != nil {
			return err
		}
	}

	slog.Debug("analyzing model",
		"name", model.RootName(),
		"input_shape", shape,
		"max_depth", opts.MaxDepth)

	return field.Fprint(cmd.OutOrStdout(), model.Build(), shape, opts.MaxDepth)
}

// parseShape parses an HxW flag value such as "227x227".
func parseShape(s string) ([2]int, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return [2]int{}, errors.Newf("invalid input shape %q, expected HxW", s)
	}

	var shape [2]int
	for i, part := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || dim <= 0 {
			return [2]int{}, errors.Newf("invalid input shape %q, expected HxW", s)
		}
		shape[i] = dim
	}
	return shape, nil
}
