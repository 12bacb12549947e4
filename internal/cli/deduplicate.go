package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/labelwrangler/internal/dataset"
	"github.com/hupe1980/labelwrangler/internal/engine"
	"github.com/hupe1980/labelwrangler/internal/logging"
)

func newDeduplicateCommand() *cobra.Command {
	var columns string

	cmd := &cobra.Command{
		Use:   "deduplicate <input-file> <output-file>",
		Short: "Drop rows that duplicate an earlier row on the given columns",
		Long: `Remove rows whose values across the given columns (comma-separated)
duplicate an earlier row. The first occurrence is kept.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.FromContext(cmd.Context())

			t, err := loadTable(args[0])
			if err != nil {
				return err
			}

			keyColumns := dataset.ParseList(columns)

			logger.Info("dropping duplicate rows",
				slog.String("columns", strings.Join(keyColumns, ", ")),
			)

			out, err := engine.Deduplicate(t, keyColumns)
			if err != nil {
				return operationError(err)
			}

			logger.Info("deduplication complete",
				slog.Int("removed", t.NumRows()-out.NumRows()),
				slog.Int("remaining", out.NumRows()),
			)

			return saveTable(out, args[1])
		},
	}

	cmd.Flags().StringVar(&columns, "columns", "", "comma-separated columns forming the duplicate key")
	_ = cmd.MarkFlagRequired("columns")

	return cmd
}
