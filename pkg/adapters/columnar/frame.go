// Package columnar implements the column-major table representation.
//
// A Frame stores each column as its own value slice and optionally carries
// row-index labels, the row-identity metadata preserved by
// Backend.CopyRowIdentity. It is the richer of the two built-in
// representations; see the records package for the row-major one.
package columnar

import (
	"fmt"
	"reflect"
	"slices"
)

// Frame is a column-major table: ordered named columns of equal length,
// plus optional row-index labels. Frames are immutable; derivations
// return new frames and accessors return copies.
type Frame struct {
	names []string
	cols  [][]any
	index []any // nil means positional identity
	nrows int
}

// New builds a frame from column-major data.
// Names and columns must align, names must be unique, and all columns
// must have the same length.
func New(names []string, cols [][]any) (*Frame, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("got %d names for %d columns", len(names), len(cols))
	}
	if err := checkNames(names); err != nil {
		return nil, err
	}
	nrows := 0
	if len(cols) > 0 {
		nrows = len(cols[0])
	}
	copied := make([][]any, len(cols))
	for i, col := range cols {
		if len(col) != nrows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", names[i], len(col), nrows)
		}
		copied[i] = slices.Clone(col)
	}
	return &Frame{names: slices.Clone(names), cols: copied, nrows: nrows}, nil
}

func checkNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate column name: %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// WithIndex returns a copy of the frame carrying the given row-index
// labels. The label count must match the row count.
func (f *Frame) WithIndex(index []any) (*Frame, error) {
	if len(index) != f.nrows {
		return nil, fmt.Errorf("got %d index labels for %d rows", len(index), f.nrows)
	}
	out := f.shallow()
	out.index = slices.Clone(index)
	return out, nil
}

// shallow copies the frame header while sharing column data.
// Safe because frames never expose their internal slices.
func (f *Frame) shallow() *Frame {
	return &Frame{
		names: slices.Clone(f.names),
		cols:  slices.Clone(f.cols),
		index: f.index,
		nrows: f.nrows,
	}
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	return slices.Clone(f.names)
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	return f.nrows
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.names)
}

// Column returns a copy of the named column's cells.
func (f *Frame) Column(name string) ([]any, bool) {
	for i, n := range f.names {
		if n == name {
			return slices.Clone(f.cols[i]), true
		}
	}
	return nil, false
}

// Index returns a copy of the row-index labels, or nil when the frame
// has positional identity only.
func (f *Frame) Index() []any {
	return slices.Clone(f.index)
}

// Equal reports whether two frames have the same names, cells and index.
func (f *Frame) Equal(o *Frame) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.nrows == o.nrows &&
		slices.Equal(f.names, o.names) &&
		reflect.DeepEqual(f.cols, o.cols) &&
		reflect.DeepEqual(f.index, o.index)
}
