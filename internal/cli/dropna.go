package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/labelwrangler/internal/dataset"
	"github.com/hupe1980/labelwrangler/internal/engine"
	"github.com/hupe1980/labelwrangler/internal/logging"
)

func newDropNACommand() *cobra.Command {
	var columns string

	cmd := &cobra.Command{
		Use:   "dropna <input-file> <output-file>",
		Short: "Drop rows with a missing value in any of the given columns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.FromContext(cmd.Context())

			t, err := loadTable(args[0])
			if err != nil {
				return err
			}

			out, removed, err := engine.DropNA(t, dataset.ParseList(columns))
			if err != nil {
				return operationError(err)
			}

			logger.Info("removed rows with missing values",
				slog.Int("removed", removed),
				slog.Int("remaining", out.NumRows()),
			)

			return saveTable(out, args[1])
		},
	}

	cmd.Flags().StringVar(&columns, "columns", "", "comma-separated columns to check for missing values")
	_ = cmd.MarkFlagRequired("columns")

	return cmd
}
