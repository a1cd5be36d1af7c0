package columnar

import (
	"fmt"
	"slices"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/schema"
)

// Backend implements ports.Backend for columnar frames.
type Backend struct{}

// NewBackend creates the columnar backend. It is stateless.
func NewBackend() *Backend {
	return &Backend{}
}

// Kind returns the representation name.
func (b *Backend) Kind() string { return "columnar" }

// Owns reports whether the value is a columnar frame.
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
// order, keeping the row count and index of the source.
func (b *Backend) Select(t domain.Table, names []string) (domain.Table, error) {
	f, err := b.frame(t)
	if err != nil {
		return nil, err
	}
	var missing []string
	picked := make([][]any, 0, len(names))
	for _, name := range names {
		i := slices.Index(f.names, name)
		if i < 0 {
			missing = append(missing, name)
			continue
		}
		picked = append(picked, f.cols[i])
	}
	if len(missing) > 0 {
		return nil, &domain.ColumnNotFoundError{Missing: missing}
	}
	return &Frame{
		names: slices.Clone(names),
		cols:  picked,
		index: f.index,
		nrows: f.nrows,
	}, nil
}

// ConcatColumns concatenates two frames column-wise. Row counts must
// match and the combined names must be unique. The left frame's index
// wins; a left frame without one inherits the right's.
func (b *Backend) ConcatColumns(left, right domain.Table) (domain.Table, error) {
	lf, err := b.frame(left)
	if err != nil {
		return nil, err
	}
	rf, err := b.frame(right)
	if err != nil {
		return nil, err
	}
	if lf.nrows != rf.nrows {
		return nil, fmt.Errorf("cannot concat %d rows with %d rows", lf.nrows, rf.nrows)
	}
	names := append(lf.Names(), rf.names...)
	if err := checkNames(names); err != nil {
		return nil, err
	}
	index := lf.index
	if index == nil {
		index = rf.index
	}
	return &Frame{
		names: names,
		cols:  append(slices.Clone(lf.cols), rf.cols...),
		index: index,
		nrows: lf.nrows,
	}, nil
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
	out := f.shallow()
	out.names = slices.Clone(names)
	return out, nil
}

// CopyRowIdentity copies the source frame's index onto the derived frame.
// A source without an index clears the derived frame's index, so the
// result always mirrors the source's row identity.
func (b *Backend) CopyRowIdentity(src, derived domain.Table) (domain.Table, error) {
	sf, err := b.frame(src)
	if err != nil {
		return nil, err
	}
	df, err := b.frame(derived)
	if err != nil {
		return nil, err
	}
	if sf.index != nil && sf.nrows != df.nrows {
		return nil, fmt.Errorf("cannot copy identity of %d rows onto %d rows", sf.nrows, df.nrows)
	}
	out := df.shallow()
	out.index = sf.index
	return out, nil
}

// NumRows returns the number of rows.
func (b *Backend) NumRows(t domain.Table) (int, error) {
	f, err := b.frame(t)
	if err != nil {
		return 0, err
	}
	return f.nrows, nil
}

// Columns returns the cell data in column-major order.
func (b *Backend) Columns(t domain.Table) ([][]any, error) {
	f, err := b.frame(t)
	if err != nil {
		return nil, err
	}
	cols := make([][]any, len(f.cols))
	for i, col := range f.cols {
		cols[i] = slices.Clone(col)
	}
	return cols, nil
}

// Schema returns the ordered column schema with inferred kinds.
func (b *Backend) Schema(t domain.Table) (schema.Schema, error) {
	f, err := b.frame(t)
	if err != nil {
		return nil, err
	}
	s := make(schema.Schema, len(f.names))
	for i, name := range f.names {
		s[i] = schema.Column{Name: name, Kind: schema.Infer(f.cols[i])}
	}
	return s, nil
}

// FromColumns builds a columnar frame from column-major data.
func (b *Backend) FromColumns(names []string, columns [][]any) (domain.Table, error) {
	return New(names, columns)
}
