package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/labelwrangler/internal/dataset"
)

// newTable is a test helper building a table from a header and rows.
func newTable(columns []string, rows ...[]string) *dataset.Table {
	return &dataset.Table{Columns: columns, Rows: rows}
}

func TestDeduplicate_KeepsFirstOccurrence(t *testing.T) {
	in := newTable([]string{"id", "text", "lbl"},
		[]string{"1", "foo", "cat"},
		[]string{"2", "foo", "cat"},
		[]string{"3", "bar", "dog"},
		[]string{"4", "foo", "cat"},
	)

	out, err := Deduplicate(in, []string{"text", "lbl"})
	require.NoError(t, err)

	require.Len(t, out.Rows, 2)
	assert.Equal(t, "1", out.Rows[0][0], "first occurrence must survive")
	assert.Equal(t, "3", out.Rows[1][0])
}

func TestDeduplicate_Idempotent(t *testing.T) {
	in := newTable([]string{"a", "b"},
		[]string{"x", "1"},
		[]string{"x", "1"},
		[]string{"y", "2"},
	)

	once, err := Deduplicate(in, []string{"a", "b"})
	require.NoError(t, err)

	twice, err := Deduplicate(once, []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, once.Rows, twice.Rows)
}

func TestDeduplicate_SingleColumnKey(t *testing.T) {
	in := newTable([]string{"id", "lbl"},
		[]string{"1", "cat"},
		[]string{"2", "cat"},
		[]string{"3", "dog"},
	)

	out, err := Deduplicate(in, []string{"lbl"})
	require.NoError(t, err)

	require.Len(t, out.Rows, 2)
	assert.Equal(t, "1", out.Rows[0][0])
	assert.Equal(t, "3", out.Rows[1][0])
}

func TestDeduplicate_UnknownColumns(t *testing.T) {
	in := newTable([]string{"id", "lbl"}, []string{"1", "cat"})

	_, err := Deduplicate(in, []string{"lbl", "nope", "missing"})
	require.Error(t, err)

	var cnf *ColumnNotFoundError
	require.ErrorAs(t, err, &cnf)
	assert.Equal(t, []string{"nope", "missing"}, cnf.Missing)
	assert.Equal(t, []string{"id", "lbl"}, cnf.Valid)
	assert.Contains(t, err.Error(), "valid options")
}

func TestDeduplicate_NoColumns(t *testing.T) {
	in := newTable([]string{"id"}, []string{"1"})

	_, err := Deduplicate(in, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArguments))
}

func TestDeduplicate_DoesNotMutateInput(t *testing.T) {
	in := newTable([]string{"id"}, []string{"1"}, []string{"1"}, []string{"2"})

	_, err := Deduplicate(in, []string{"id"})
	require.NoError(t, err)

	assert.Len(t, in.Rows, 3)
}
