package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropNA_RemovesRowsWithMissingValues(t *testing.T) {
	in := newTable([]string{"id", "text", "lbl"},
		[]string{"1", "hello", "cat"},
		[]string{"2", "", "cat"},
		[]string{"3", "world", ""},
		[]string{"4", "NA", "dog"},
		[]string{"5", "ok", "dog"},
	)

	out, removed, err := DropNA(in, []string{"text", "lbl"})
	require.NoError(t, err)

	assert.Equal(t, 3, removed)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "1", out.Rows[0][0])
	assert.Equal(t, "5", out.Rows[1][0])
}

func TestDropNA_OnlyCheckedColumnsMatter(t *testing.T) {
	in := newTable([]string{"id", "text", "lbl"},
		[]string{"1", "", "cat"},
		[]string{"2", "x", "dog"},
	)

	out, removed, err := DropNA(in, []string{"lbl"})
	require.NoError(t, err)

	// The missing value in text is outside the checked columns.
	assert.Zero(t, removed)
	assert.Len(t, out.Rows, 2)
}

func TestDropNA_UnknownColumn(t *testing.T) {
	in := newTable([]string{"id"}, []string{"1"})

	_, _, err := DropNA(in, []string{"ghost"})
	require.Error(t, err)

	var cnf *ColumnNotFoundError
	require.ErrorAs(t, err, &cnf)
	assert.Equal(t, []string{"ghost"}, cnf.Missing)
}

func TestDropNA_CountInvariant(t *testing.T) {
	in := newTable([]string{"a"},
		[]string{""},
		[]string{"NaN"},
		[]string{"ok"},
	)

	out, removed, err := DropNA(in, []string{"a"})
	require.NoError(t, err)

	assert.Equal(t, len(in.Rows)-len(out.Rows), removed)
}
