package cli

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/labelwrangler/internal/engine"
)

func newStatCommand() *cobra.Command {
	var labelColumn string

	cmd := &cobra.Command{
		Use:   "stat <input-file>",
		Short: "Show the label frequency table for a dataset",
		Long: `Show per-value counts for the label column of the dataset,
ordered by descending frequency.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(args[0])
			if err != nil {
				return err
			}

			counts, err := engine.Stat(t, labelColumn)
			if err != nil {
				return operationError(err)
			}

			printLabelCounts(cmd.OutOrStdout(), counts)

			return nil
		},
	}

	cmd.Flags().StringVar(&labelColumn, "label-column", "", "name of the column containing the label")
	_ = cmd.MarkFlagRequired("label-column")

	return cmd
}
