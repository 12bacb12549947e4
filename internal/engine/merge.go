package engine

import (
	"fmt"

	"github.com/hupe1980/labelwrangler/internal/dataset"
)

// MergeLabels rewrites the label of every selected row to newLabel. Row
// order and row count are preserved; this is a relabeling, not a filter.
//
// Selection is a per-row predicate over the two sets:
//   - both non-empty: label ∈ include AND label ∉ exclude
//   - only exclude:   label ∉ exclude
//   - only include:   label ∈ include
//
// At least one set must be non-empty. Every value in the union of both
// sets must occur in the label column; validation is exhaustive and happens
// before any row is touched.
func MergeLabels(t *dataset.Table, labelColumn string, include, exclude []string, newLabel string) (*dataset.Table, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, fmt.Errorf("%w: at least one label to include or exclude is required", ErrInvalidArguments)
	}

	idx, err := labelColumnIndex(t, labelColumn)
	if err != nil {
		return nil, err
	}

	union := make([]string, 0, len(include)+len(exclude))
	inUnion := make(map[string]struct{}, len(include)+len(exclude))

	for _, v := range append(append([]string(nil), include...), exclude...) {
		if _, dup := inUnion[v]; dup {
			continue
		}

		inUnion[v] = struct{}{}
		union = append(union, v)
	}

	if err := validateLabelsExist(t, idx, labelColumn, union); err != nil {
		return nil, err
	}

	includeSet := toSet(include)
	excludeSet := toSet(exclude)

	// The membership tests are evaluated per row. Collapsing them into a
	// single set-level boolean would silently change the include∧exclude
	// case into all-or-nothing selection.
	selected := func(label string) bool {
		switch {
		case len(includeSet) > 0 && len(excludeSet) > 0:
			_, in := includeSet[label]
			_, ex := excludeSet[label]

			return in && !ex
		case len(excludeSet) > 0:
			_, ex := excludeSet[label]
			return !ex
		default:
			_, in := includeSet[label]
			return in
		}
	}

	out := t.Clone()

	for _, row := range out.Rows {
		if selected(row[idx]) {
			row[idx] = newLabel
		}
	}

	return out, nil
}
