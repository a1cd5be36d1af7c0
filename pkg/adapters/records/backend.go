package records

import (
	"fmt"
	"slices"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/schema"
)

// Backend implements ports.Backend for record frames.
type Backend struct{}

// NewBackend creates the records backend. It is stateless.
func NewBackend() *Backend {
	return &Backend{}
}

// Kind returns the representation name.
func (b *Backend) Kind() string { return "records" }

// Owns reports whether the value is a record frame.
func (b *Backend) Owns(t domain.Table) bool {
	f, ok := t.(*Frame)
	return ok && f != nil
}

func (b *Backend) frame(t domain.Table) (*Frame, error) {
	f, ok := t.(*Frame)
	if !ok || f == nil {
		return nil, &domain.UnsupportedTableError{Value: t}
	}
	return f, nil
}

// ColumnNames returns the column names in table order.
func (b *Backend) ColumnNames(t domain.Table) ([]string, error) {
	f, err := b.frame(t)
	if err != nil {
		return nil, err
	}
	return f.Names(), nil
}

// Select returns a frame restricted to the named columns, in the given
// order. The row count is kept even when no columns are selected.
func (b *Backend) Select(t domain.Table, names []string) (domain.Table, error) {
	f, err := b.frame(t)
	if err != nil {
		return nil, err
	}
	var missing []string
	idx := make([]int, 0, len(names))
	for _, name := range names {
		i := slices.Index(f.names, name)
		if i < 0 {
			missing = append(missing, name)
			continue
		}
		idx = append(idx, i)
	}
	if len(missing) > 0 {
		return nil, &domain.ColumnNotFoundError{Missing: missing}
	}
	rows := make([][]any, len(f.rows))
	for r, row := range f.rows {
		picked := make([]any, len(idx))
		for j, i := range idx {
			picked[j] = row[i]
		}
		rows[r] = picked
	}
	return &Frame{names: slices.Clone(names), rows: rows}, nil
}

// ConcatColumns concatenates two frames column-wise. Row counts must
// match and the combined names must be unique.
func (b *Backend) ConcatColumns(left, right domain.Table) (domain.Table, error) {
	lf, err := b.frame(left)
	if err != nil {
		return nil, err
	}
	rf, err := b.frame(right)
	if err != nil {
		return nil, err
	}
	if len(lf.rows) != len(rf.rows) {
		return nil, fmt.Errorf("cannot concat %d rows with %d rows", len(lf.rows), len(rf.rows))
	}
	names := append(lf.Names(), rf.names...)
	if err := checkNames(names); err != nil {
		return nil, err
	}
	rows := make([][]any, len(lf.rows))
	for r := range lf.rows {
		row := make([]any, 0, len(names))
		row = append(row, lf.rows[r]...)
		row = append(row, rf.rows[r]...)
		rows[r] = row
	}
	return &Frame{names: names, rows: rows}, nil
}

// SetColumnNames returns a frame with the columns renamed positionally.
func (b *Backend) SetColumnNames(t domain.Table, names []string) (domain.Table, error) {
	f, err := b.frame(t)
	if err != nil {
		return nil, err
	}
	if len(names) != len(f.names) {
		return nil, fmt.Errorf("got %d names for %d columns", len(names), len(f.names))
	}
	if err := checkNames(names); err != nil {
		return nil, err
	}
	return &Frame{names: slices.Clone(names), rows: f.rows}, nil
}

// CopyRowIdentity is a no-op: record frames have positional identity only.
func (b *Backend) CopyRowIdentity(src, derived domain.Table) (domain.Table, error) {
	if _, err := b.frame(src); err != nil {
		return nil, err
	}
	df, err := b.frame(derived)
	if err != nil {
		return nil, err
	}
	return df, nil
}

// NumRows returns the number of rows.
func (b *Backend) NumRows(t domain.Table) (int, error) {
	f, err := b.frame(t)
	if err != nil {
		return 0, err
	}
	return len(f.rows), nil
}

// Columns returns the cell data in column-major order.
func (b *Backend) Columns(t domain.Table) ([][]any, error) {
	f, err := b.frame(t)
	if err != nil {
		return nil, err
	}
	cols := make([][]any, len(f.names))
	for i := range f.names {
		col := make([]any, len(f.rows))
		for r, row := range f.rows {
			col[r] = row[i]
		}
		cols[i] = col
	}
	return cols, nil
}

// Schema returns the ordered column schema with inferred kinds.
func (b *Backend) Schema(t domain.Table) (schema.Schema, error) {
	f, err := b.frame(t)
	if err != nil {
		return nil, err
	}
	cols, err := b.Columns(t)
	if err != nil {
		return nil, err
	}
	s := make(schema.Schema, len(f.names))
	for i, name := range f.names {
		s[i] = schema.Column{Name: name, Kind: schema.Infer(cols[i])}
	}
	return s, nil
}

// FromColumns builds a record frame from column-major data.
func (b *Backend) FromColumns(names []string, columns [][]any) (domain.Table, error) {
	if len(names) != len(columns) {
		return nil, fmt.Errorf("got %d names for %d columns", len(names), len(columns))
	}
	if err := checkNames(names); err != nil {
		return nil, err
	}
	nrows := 0
	if len(columns) > 0 {
		nrows = len(columns[0])
	}
	for i, col := range columns {
		if len(col) != nrows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", names[i], len(col), nrows)
		}
	}
	rows := make([][]any, nrows)
	for r := range rows {
		row := make([]any, len(columns))
		for i, col := range columns {
			row[i] = col[r]
		}
		rows[r] = row
	}
	return &Frame{names: slices.Clone(names), rows: rows}, nil
}
