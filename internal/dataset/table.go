// Package dataset provides the in-memory table model for delimited datasets
// and the CSV boundary: loading, saving, and argument-list parsing.
package dataset

import "strings"

// Table is an ordered collection of uniform-width rows. Columns holds the
// header in file order; every row has exactly len(Columns) cells. Row order
// is significant and preserved by all operations unless an operation
// explicitly redefines it.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NumRows returns the number of data rows (header excluded).
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or -1 if absent.
// Column names are matched exactly.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}

	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// MissingColumns returns the subset of names absent from the table,
// preserving the order given.
func (t *Table) MissingColumns(names []string) []string {
	var missing []string

	for _, name := range names {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}

	return missing
}

// Clone returns a deep copy of the table. Operations that rewrite cells use
// Clone so the caller's table is never mutated.
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}

	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}

	return out
}

// WithRows returns a table sharing this table's header but holding rows.
// The row slices themselves are shared, not copied; callers must treat
// them as read-only.
func (t *Table) WithRows(rows [][]string) *Table {
	return &Table{Columns: t.Columns, Rows: rows}
}

// IsMissing reports whether a cell value counts as missing. Cells that are
// empty (or whitespace-only) and the literal NA/NaN tokens, the encodings
// produced when a dataframe with null cells is written to CSV, are missing.
// The tokens are case-sensitive; label comparison elsewhere stays exact.
func IsMissing(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "NA", "NaN":
		return true
	default:
		return false
	}
}

// ParseList splits a comma-separated argument into its elements, trimming
// surrounding whitespace per element. Empty elements are dropped and
// duplicates collapse to the first occurrence, so the result behaves as an
// ordered set. Empty input yields nil.
func ParseList(s string) []string {
	var (
		out  []string
		seen = make(map[string]struct{})
	)

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if _, dup := seen[part]; dup {
			continue
		}

		seen[part] = struct{}{}
		out = append(out, part)
	}

	return out
}
