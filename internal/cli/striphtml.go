package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/labelwrangler/internal/clean"
	"github.com/hupe1980/labelwrangler/internal/engine"
	"github.com/hupe1980/labelwrangler/internal/logging"
)

func newStripHTMLCommand() *cobra.Command {
	var column string

	cmd := &cobra.Command{
		Use:   "strip-html <input-file> <output-file>",
		Short: "Strip HTML tags from a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.FromContext(cmd.Context())

			t, err := loadTable(args[0])
			if err != nil {
				return err
			}

			idx := t.ColumnIndex(column)
			if idx < 0 {
				return operationError(&engine.ColumnNotFoundError{
					Missing: []string{column},
					Valid:   t.Columns,
				})
			}

			out := t.Clone()
			for _, row := range out.Rows {
				row[idx] = clean.StripTags(row[idx])
			}

			logger.Info("stripped HTML tags",
				slog.String("column", column),
				slog.Int("rows", out.NumRows()),
			)

			return saveTable(out, args[1])
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "name of the column to strip")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}
