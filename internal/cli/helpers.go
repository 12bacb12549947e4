package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hupe1980/labelwrangler/internal/dataset"
	"github.com/hupe1980/labelwrangler/internal/engine"
)

// loadTable reads the input dataset, mapping failures (missing file,
// malformed content) to exit code 1.
func loadTable(path string) (*dataset.Table, error) {
	t, err := dataset.Load(path)
	if err != nil {
		return nil, &ExitError{Code: 1, Err: err}
	}

	return t, nil
}

// saveTable persists the result dataset, mapping write failures to exit
// code 6.
func saveTable(t *dataset.Table, path string) error {
	if err := dataset.Save(t, path); err != nil {
		return &ExitError{Code: 6, Err: err}
	}

	return nil
}

// operationError maps engine validation failures to exit code 1.
func operationError(err error) error {
	return &ExitError{Code: 1, Err: err}
}

// printLabelCounts writes an aligned label frequency table.
func printLabelCounts(w io.Writer, counts []engine.LabelCount) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, lc := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", lc.Label, lc.Count)
	}

	_ = tw.Flush()
}

// printRows writes the header plus the given rows as an aligned table.
func printRows(w io.Writer, columns []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	printRow(tw, columns)

	for _, row := range rows {
		printRow(tw, row)
	}

	_ = tw.Flush()
}

func printRow(w io.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}

		fmt.Fprint(w, c)
	}

	fmt.Fprintln(w)
}
