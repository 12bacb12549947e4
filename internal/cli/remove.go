package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/labelwrangler/internal/dataset"
	"github.com/hupe1980/labelwrangler/internal/engine"
	"github.com/hupe1980/labelwrangler/internal/logging"
)

func newRemoveCommand() *cobra.Command {
	var (
		labelColumn string
		removeList  string
	)

	cmd := &cobra.Command{
		Use:   "remove <input-file> <output-file>",
		Short: "Remove rows whose label is in the remove list",
		Long: `Remove every row whose value in the label column matches one of the
comma-separated values in --remove-list. Values that never occur in the
data match zero rows and are not an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.FromContext(cmd.Context())

			t, err := loadTable(args[0])
			if err != nil {
				return err
			}

			out, matches, err := engine.RemoveLabels(t, labelColumn, dataset.ParseList(removeList))
			if err != nil {
				return operationError(err)
			}

			for _, m := range matches {
				logger.Info("matched rows for removal",
					slog.String("label", m.Label),
					slog.Int("rows", m.Count),
				)
			}

			// The original tool prints the new label distribution after a
			// remove; keep that as a diagnostic.
			if counts, statErr := engine.Stat(out, labelColumn); statErr == nil {
				for _, lc := range counts {
					logger.Info("new distribution",
						slog.String("label", lc.Label),
						slog.Int("count", lc.Count),
					)
				}
			}

			return saveTable(out, args[1])
		},
	}

	cmd.Flags().StringVar(&labelColumn, "label-column", "", "name of the column containing the label")
	cmd.Flags().StringVar(&removeList, "remove-list", "", "comma-separated label values to remove")
	_ = cmd.MarkFlagRequired("label-column")
	_ = cmd.MarkFlagRequired("remove-list")

	return cmd
}
