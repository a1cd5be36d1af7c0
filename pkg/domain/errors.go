package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFitted is returned when transform or introspection is called on an
// applier that has not completed a successful fit.
var ErrNotFitted = errors.New("not fitted: call Fit or FitTransform first")

// SelectionError is returned when a column selection references columns
// that do not exist in the fit-time table.
type SelectionError struct {
	Missing   []string // referenced but absent
	Available []string // the table's actual columns
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection references missing columns [%s] (table has [%s])",
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
}

// ColumnNotFoundError is returned when a transform-time table is missing
// columns required by the frozen selection.
type ColumnNotFoundError struct {
	Missing []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column not found: %s", strings.Join(e.Missing, ", "))
}

// OutputTypeError is returned when the wrapped transformer's fit-time
// output is not a table of the expected representation.
type OutputTypeError struct {
	Expected string // backend kind of the input table
	Got      any    // the value the transformer returned
}

func (e *OutputTypeError) Error() string {
	return fmt.Sprintf("transformer returned %T, want a %s table", e.Got, e.Expected)
}

// UnsupportedTableError is returned when a value is not owned by any
// registered table backend.
type UnsupportedTableError struct {
	Value any
}

func (e *UnsupportedTableError) Error() string {
	return fmt.Sprintf("unsupported table type: %T", e.Value)
}
