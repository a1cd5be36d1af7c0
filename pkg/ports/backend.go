package ports

import (
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/schema"
)

// Backend is the primitive operation set over one tabular representation.
// Implemented once per supported representation; everything above this
// layer is representation-agnostic. Operations never mutate their inputs,
// they return new derived tables.
type Backend interface {
	// Kind returns the representation's short name (e.g., "columnar").
	Kind() string

	// Owns reports whether the value is a table of this representation.
	Owns(t domain.Table) bool

	// ColumnNames returns the column names in table order.
	ColumnNames(t domain.Table) ([]string, error)

	// Select returns a table restricted to the named columns, in the given
	// order. Returns domain.ColumnNotFoundError if any name is absent.
	Select(t domain.Table, names []string) (domain.Table, error)

	// ConcatColumns concatenates two tables column-wise. Row counts must
	// match and the combined column names must be unique.
	ConcatColumns(left, right domain.Table) (domain.Table, error)

	// SetColumnNames returns a table with the columns renamed positionally.
	// The name list must have the same arity as the table.
	SetColumnNames(t domain.Table, names []string) (domain.Table, error)

	// CopyRowIdentity copies row-identity metadata from src onto derived.
	// Representations without such metadata return derived unchanged.
	CopyRowIdentity(src, derived domain.Table) (domain.Table, error)

	// NumRows returns the number of rows.
	NumRows(t domain.Table) (int, error)

	// Columns returns the cell data in column-major order, aligned with
	// ColumnNames. The returned slices are copies.
	Columns(t domain.Table) ([][]any, error)

	// Schema returns the ordered column schema, kinds inferred from cells.
	Schema(t domain.Table) (schema.Schema, error)

	// FromColumns builds a table of this representation from column-major
	// data. All columns must have equal length and unique names.
	FromColumns(names []string, columns [][]any) (domain.Table, error)
}
