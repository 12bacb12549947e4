package engine

import (
	"fmt"

	"github.com/hupe1980/labelwrangler/internal/dataset"
)

// RemoveLabels drops every row whose label value is a member of removeSet.
// It returns the filtered table plus the per-value match counts (in
// removeSet order) computed before mutation; the counts are purely
// informational. Values in removeSet that never occur in the data are not
// an error; they simply match zero rows. Kept rows stay in original order.
func RemoveLabels(t *dataset.Table, labelColumn string, removeSet []string) (*dataset.Table, []LabelCount, error) {
	if len(removeSet) == 0 {
		return nil, nil, fmt.Errorf("%w: at least one label to remove is required", ErrInvalidArguments)
	}

	idx, err := labelColumnIndex(t, labelColumn)
	if err != nil {
		return nil, nil, err
	}

	counts := make([]LabelCount, len(removeSet))
	for i, v := range removeSet {
		counts[i] = LabelCount{Label: v}
	}

	position := make(map[string]int, len(removeSet))
	for i, v := range removeSet {
		position[v] = i
	}

	var kept [][]string

	for _, row := range t.Rows {
		if i, drop := position[row[idx]]; drop {
			counts[i].Count++
			continue
		}

		kept = append(kept, row)
	}

	return t.WithRows(kept), counts, nil
}
