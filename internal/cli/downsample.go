package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/labelwrangler/internal/dataset"
	"github.com/hupe1980/labelwrangler/internal/engine"
	"github.com/hupe1980/labelwrangler/internal/logging"
)

func newDownsampleCommand() *cobra.Command {
	var (
		labelColumn string
		includeList string
		maximum     int
		randomState int64
	)

	cmd := &cobra.Command{
		Use:   "random-downsample <input-file> <output-file>",
		Short: "Randomly undersample over-represented labels",
		Long: `Cap the number of rows per label in --include-list at --maximum by
sampling without replacement. Sampling is seeded with --random-state, so
the same invocation over the same data always keeps the same rows. Labels
already at or below the maximum are kept whole.

Sampled labels are moved behind the remaining rows; shuffle downstream if
global row order matters.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.FromContext(cmd.Context())

			t, err := loadTable(args[0])
			if err != nil {
				return err
			}

			include := dataset.ParseList(includeList)

			if before, statErr := engine.Stat(t, labelColumn); statErr == nil {
				for _, lc := range before {
					logger.Debug("label count before sampling",
						slog.String("label", lc.Label),
						slog.Int("count", lc.Count),
					)
				}
			}

			out, err := engine.RandomDownsample(t, labelColumn, include, maximum, randomState)
			if err != nil {
				return operationError(err)
			}

			logger.Info("downsampling complete",
				slog.Int("maximum", maximum),
				slog.Int64("seed", randomState),
				slog.Int("rows", out.NumRows()),
			)

			return saveTable(out, args[1])
		},
	}

	cmd.Flags().StringVar(&labelColumn, "label-column", "", "name of the column containing the label")
	cmd.Flags().StringVar(&includeList, "include-list", "", "comma-separated labels to downsample")
	cmd.Flags().IntVar(&maximum, "maximum", 0, "maximum number of rows to keep per label")
	cmd.Flags().Int64Var(&randomState, "random-state", 42, "random seed to sample against")
	_ = cmd.MarkFlagRequired("label-column")
	_ = cmd.MarkFlagRequired("maximum")

	return cmd
}
