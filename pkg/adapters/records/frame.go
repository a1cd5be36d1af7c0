// Package records implements the row-major table representation.
//
// A Frame stores rows as tuples aligned to a shared header, the natural
// shape of decoded JSON record payloads. Row identity is positional only,
// so Backend.CopyRowIdentity is a no-op for this representation.
package records

import (
	"fmt"
	"reflect"
	"slices"
)

// Frame is a row-major table: a header of unique column names and one
// value tuple per row. Frames are immutable; derivations return new
// frames and accessors return copies.
type Frame struct {
	names []string
	rows  [][]any
}

// New builds a frame from a header and row tuples.
// Names must be unique and every row must match the header arity.
func New(names []string, rows [][]any) (*Frame, error) {
	if err := checkNames(names); err != nil {
		return nil, err
	}
	copied := make([][]any, len(rows))
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("row %d has %d values, want %d", i, len(row), len(names))
		}
		copied[i] = slices.Clone(row)
	}
	return &Frame{names: slices.Clone(names), rows: copied}, nil
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

// Names returns the column names in order.
func (f *Frame) Names() []string {
	return slices.Clone(f.names)
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	return len(f.rows)
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.names)
}

// Rows returns a copy of the row tuples.
func (f *Frame) Rows() [][]any {
	rows := make([][]any, len(f.rows))
	for i, row := range f.rows {
		rows[i] = slices.Clone(row)
	}
	return rows
}

// Column returns a copy of the named column's cells.
func (f *Frame) Column(name string) ([]any, bool) {
	i := slices.Index(f.names, name)
	if i < 0 {
		return nil, false
	}
	col := make([]any, len(f.rows))
	for r, row := range f.rows {
		col[r] = row[i]
	}
	return col, true
}

// Equal reports whether two frames have the same header and cells.
func (f *Frame) Equal(o *Frame) bool {
	if f == nil || o == nil {
		return f == o
	}
	if !slices.Equal(f.names, o.names) || len(f.rows) != len(o.rows) {
		return false
	}
	for i := range f.rows {
		for j := range f.names {
			if !reflect.DeepEqual(f.rows[i][j], o.rows[i][j]) {
				return false
			}
		}
	}
	return true
}
