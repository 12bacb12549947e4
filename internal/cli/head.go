package cli

import (
	"github.com/spf13/cobra"
)

func newHeadCommand() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "head <input-file>",
		Short: "Show the top N records of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(args[0])
			if err != nil {
				return err
			}

			rows := t.Rows
			if n >= 0 && n < len(rows) {
				rows = rows[:n]
			}

			printRows(cmd.OutOrStdout(), t.Columns, rows)

			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "number", "n", 10, "number of rows to show")

	return cmd
}
