// Package engine implements the label transformation operations:
// deduplication, missing-value filtering, label removal, label merging,
// seeded random downsampling, and the label frequency report.
//
// Operations are pure functions over a [dataset.Table] plus explicit
// parameters. The input table is never mutated; unchanged rows are shared
// with the result. All validation happens before any row work, so a failed
// operation leaves nothing half-transformed.
package engine

import "github.com/hupe1980/labelwrangler/internal/dataset"

// LabelCount pairs a label value with its number of occurrences.
type LabelCount struct {
	Label string
	Count int
}

// labelColumnIndex resolves labelColumn in t, returning a
// ColumnNotFoundError listing the valid options when absent.
func labelColumnIndex(t *dataset.Table, labelColumn string) (int, error) {
	idx := t.ColumnIndex(labelColumn)
	if idx < 0 {
		return -1, &ColumnNotFoundError{Missing: []string{labelColumn}, Valid: t.Columns}
	}

	return idx, nil
}

// toSet converts an ordered value list into a membership set.
func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}

// validateLabelsExist checks that every value in values occurs at least
// once in the label column at idx. It validates the whole list and returns
// an UnknownLabelValueError naming every missing value, or nil when all are
// present. Nothing may be mutated before this passes.
func validateLabelsExist(t *dataset.Table, idx int, labelColumn string, values []string) error {
	present := make(map[string]struct{})
	for _, row := range t.Rows {
		present[row[idx]] = struct{}{}
	}

	var missing []string

	for _, v := range values {
		if _, ok := present[v]; !ok {
			missing = append(missing, v)
		}
	}

	if len(missing) > 0 {
		return &UnknownLabelValueError{Column: labelColumn, Values: missing}
	}

	return nil
}
