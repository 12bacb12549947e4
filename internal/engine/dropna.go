package engine

import (
	"fmt"

	"github.com/hupe1980/labelwrangler/internal/dataset"
)

// DropNA removes every row holding a missing value in any of the given
// columns and returns the new table together with the number of rows
// removed. Unknown columns fail with ColumnNotFound, consistent with the
// other operations.
func DropNA(t *dataset.Table, columns []string) (*dataset.Table, int, error) {
	if len(columns) == 0 {
		return nil, 0, fmt.Errorf("%w: at least one column is required", ErrInvalidArguments)
	}

	if missing := t.MissingColumns(columns); len(missing) > 0 {
		return nil, 0, &ColumnNotFoundError{Missing: missing, Valid: t.Columns}
	}

	indices := make([]int, len(columns))
	for i, c := range columns {
		indices[i] = t.ColumnIndex(c)
	}

	var kept [][]string

	for _, row := range t.Rows {
		hasMissing := false

		for _, idx := range indices {
			if dataset.IsMissing(row[idx]) {
				hasMissing = true
				break
			}
		}

		if !hasMissing {
			kept = append(kept, row)
		}
	}

	return t.WithRows(kept), len(t.Rows) - len(kept), nil
}
