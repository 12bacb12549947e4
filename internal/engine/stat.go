package engine

import (
	"sort"

	"github.com/hupe1980/labelwrangler/internal/dataset"
)

// Stat counts occurrences of each distinct value in the label column,
// ordered by descending count with ties in first-encountered order.
func Stat(t *dataset.Table, labelColumn string) ([]LabelCount, error) {
	idx, err := labelColumnIndex(t, labelColumn)
	if err != nil {
		return nil, err
	}

	var (
		order  []string
		counts = make(map[string]int)
	)

	for _, row := range t.Rows {
		v := row[idx]
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}

		counts[v]++
	}

	out := make([]LabelCount, len(order))
	for i, v := range order {
		out[i] = LabelCount{Label: v, Count: counts[v]}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	return out, nil
}
