package engine

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/hupe1980/labelwrangler/internal/dataset"
)

// RandomDownsample caps the row count of each label in include at maxCount
// by sampling without replacement from that label's rows. Labels are
// processed in the order given; each iteration partitions the table left by
// the previous one, so later labels see earlier labels already downsampled.
//
// Sampling is reproducible: each label draws from a fresh generator seeded
// with seed, and the same (subset, maxCount, seed) triple always yields the
// same rows. Sampled indices are applied in ascending order, so relative
// order within a label's subset is preserved. The rebuilt table places the
// (possibly sampled) label rows after all other rows, which changes global
// order; callers relying on row order must not downsample.
//
// Subsets at or below maxCount are kept whole. Every label in include must
// occur in the data; validation is exhaustive and precedes any mutation.
func RandomDownsample(t *dataset.Table, labelColumn string, include []string, maxCount int, seed int64) (*dataset.Table, error) {
	if len(include) == 0 {
		return nil, fmt.Errorf("%w: at least one label to downsample is required", ErrInvalidArguments)
	}

	if maxCount < 0 {
		return nil, fmt.Errorf("%w: maximum must not be negative, got %d", ErrInvalidArguments, maxCount)
	}

	idx, err := labelColumnIndex(t, labelColumn)
	if err != nil {
		return nil, err
	}

	if err := validateLabelsExist(t, idx, labelColumn, include); err != nil {
		return nil, err
	}

	rows := t.Rows

	for _, label := range include {
		var matched, rest [][]string

		for _, row := range rows {
			if row[idx] == label {
				matched = append(matched, row)
			} else {
				rest = append(rest, row)
			}
		}

		if len(matched) > maxCount {
			matched = sampleRows(matched, maxCount, seed)
		}

		rows = append(rest, matched...)
	}

	return t.WithRows(rows), nil
}

// sampleRows draws n rows without replacement from subset using a generator
// seeded with seed, scoped to this call. Selected indices are sorted so the
// sample keeps the subset's relative order.
func sampleRows(subset [][]string, n int, seed int64) [][]string {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // reproducibility requires a seeded PRNG

	indices := rng.Perm(len(subset))[:n]
	sort.Ints(indices)

	sampled := make([][]string, n)
	for i, j := range indices {
		sampled[i] = subset[j]
	}

	return sampled
}
