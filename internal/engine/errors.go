package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArguments marks failures where a required parameter (or one of
// two alternatives) was not provided. Specific messages wrap it, so callers
// test with errors.Is.
var ErrInvalidArguments = errors.New("invalid arguments")

// ColumnNotFoundError reports referenced columns absent from the table. It
// always carries the full list of valid options so the user can correct the
// invocation without re-inspecting the file.
type ColumnNotFoundError struct {
	Missing []string
	Valid   []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column(s) not found in table: %s (valid options are: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Valid, ", "))
}

// UnknownLabelValueError reports include/exclude list values that never
// occur in the label column. Validation is exhaustive: Values holds every
// missing value, not just the first.
type UnknownLabelValueError struct {
	Column string
	Values []string
}

func (e *UnknownLabelValueError) Error() string {
	return fmt.Sprintf("label value(s) not present in column %q: %s",
		e.Column, strings.Join(e.Values, ", "))
}
