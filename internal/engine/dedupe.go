package engine

import (
	"fmt"
	"strings"

	"github.com/hupe1980/labelwrangler/internal/dataset"
)

// keySep joins key-column cells into a composite map key. The unit
// separator cannot appear in CSV cell values produced by encoding/csv
// round-trips of ordinary data, keeping composite keys collision-free.
const keySep = "\x1f"

// Deduplicate removes rows whose tuple of values across keyColumns repeats
// an earlier row's tuple, keeping the first occurrence in original order.
// keyColumns must be non-empty and every column must exist.
func Deduplicate(t *dataset.Table, keyColumns []string) (*dataset.Table, error) {
	if len(keyColumns) == 0 {
		return nil, fmt.Errorf("%w: at least one key column is required", ErrInvalidArguments)
	}

	if missing := t.MissingColumns(keyColumns); len(missing) > 0 {
		return nil, &ColumnNotFoundError{Missing: missing, Valid: t.Columns}
	}

	indices := make([]int, len(keyColumns))
	for i, c := range keyColumns {
		indices[i] = t.ColumnIndex(c)
	}

	var (
		kept [][]string
		seen = make(map[string]struct{}, len(t.Rows))
	)

	for _, row := range t.Rows {
		parts := make([]string, len(indices))
		for i, idx := range indices {
			parts[i] = row[idx]
		}

		key := strings.Join(parts, keySep)
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		kept = append(kept, row)
	}

	return t.WithRows(kept), nil
}
