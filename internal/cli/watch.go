package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/labelwrangler/internal/dataset"
	"github.com/hupe1980/labelwrangler/internal/engine"
	"github.com/hupe1980/labelwrangler/internal/logging"
	"github.com/hupe1980/labelwrangler/internal/watch"
)

func newWatchCommand() *cobra.Command {
	var (
		labelColumn string
		debounce    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <input-file>",
		Short: "Reprint the label frequency table whenever the dataset changes",
		Long: `Watch the dataset file and reprint the label frequency table after
every change, until interrupted. Useful while labels are being edited
elsewhere.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := watch.DefaultOptions()
			opts.Path = args[0]
			opts.Debounce = debounce
			opts.Logger = logging.FromContext(cmd.Context())
			opts.Out = cmd.ErrOrStderr()

			runFn := func(_ context.Context, path string) (int, error) {
				t, err := dataset.Load(path)
				if err != nil {
					return 0, err
				}

				counts, err := engine.Stat(t, labelColumn)
				if err != nil {
					return 0, err
				}

				printLabelCounts(cmd.OutOrStdout(), counts)

				return t.NumRows(), nil
			}

			if err := watch.Run(cmd.Context(), opts, runFn); err != nil {
				return &ExitError{Code: 1, Err: err}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&labelColumn, "label-column", "", "name of the column containing the label")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "quiet period before re-reading the file")
	_ = cmd.MarkFlagRequired("label-column")

	return cmd
}
