package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/labelwrangler/internal/dataset"
	"github.com/hupe1980/labelwrangler/internal/engine"
	"github.com/hupe1980/labelwrangler/internal/logging"
)

func newMergeCommand() *cobra.Command {
	var (
		labelColumn string
		includeList string
		excludeList string
		newLabel    string
	)

	cmd := &cobra.Command{
		Use:   "merge <input-file> <output-file>",
		Short: "Merge label values into a single new label",
		Long: `Rewrite the label of selected rows to --new-label-name.

With both lists given, a row is selected when its label is in
--include-list and not in --exclude-list. With only --exclude-list, every
row whose label is not excluded is selected. With only --include-list,
exactly the included labels are selected.

Example: collapse a multi-class dataset into Other / Not Other:

  labelwrangler merge input.csv output.csv --label-column=Label \
    --exclude-list=Other --new-label-name="Not Other"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.FromContext(cmd.Context())

			t, err := loadTable(args[0])
			if err != nil {
				return err
			}

			include := dataset.ParseList(includeList)
			exclude := dataset.ParseList(excludeList)

			out, err := engine.MergeLabels(t, labelColumn, include, exclude, newLabel)
			if err != nil {
				return operationError(err)
			}

			logger.Info("labels merged",
				slog.String("newLabel", newLabel),
				slog.Int("rows", out.NumRows()),
			)

			return saveTable(out, args[1])
		},
	}

	cmd.Flags().StringVar(&labelColumn, "label-column", "", "name of the column containing the label")
	cmd.Flags().StringVar(&includeList, "include-list", "", "comma-separated labels to merge")
	cmd.Flags().StringVar(&excludeList, "exclude-list", "", "comma-separated labels to exclude from the merge")
	cmd.Flags().StringVar(&newLabel, "new-label-name", "", "name for the merged label")
	_ = cmd.MarkFlagRequired("label-column")
	_ = cmd.MarkFlagRequired("new-label-name")

	return cmd
}
