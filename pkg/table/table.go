// Package table dispatches primitive operations to the backend owning a
// given tabular value.
//
// It is the convenience surface over the built-in representations: code
// that holds an opaque domain.Table can call these helpers without caring
// whether the value is a columnar or a record frame. The applier uses the
// same dispatch through its configurable backend list.
package table

import (
	"github.com/aretw0/graft/pkg/adapters/columnar"
	"github.com/aretw0/graft/pkg/adapters/records"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/ports"
	"github.com/aretw0/graft/pkg/schema"
)

var builtin = []ports.Backend{
	columnar.NewBackend(),
	records.NewBackend(),
}

// Backends returns the built-in backends, columnar first.
func Backends() []ports.Backend {
	out := make([]ports.Backend, len(builtin))
	copy(out, builtin)
	return out
}

// BackendFor returns the backend owning the value, or
// domain.UnsupportedTableError if no built-in representation matches.
func BackendFor(t domain.Table) (ports.Backend, error) {
	for _, be := range builtin {
		if be.Owns(t) {
			return be, nil
		}
	}
	return nil, &domain.UnsupportedTableError{Value: t}
}

// ColumnNames returns the column names of the table.
func ColumnNames(t domain.Table) ([]string, error) {
	be, err := BackendFor(t)
	if err != nil {
		return nil, err
	}
	return be.ColumnNames(t)
}

// Select restricts the table to the named columns, in the given order.
func Select(t domain.Table, names []string) (domain.Table, error) {
	be, err := BackendFor(t)
	if err != nil {
		return nil, err
	}
	return be.Select(t, names)
}

// ConcatColumns concatenates two tables of the same representation.
func ConcatColumns(left, right domain.Table) (domain.Table, error) {
	be, err := BackendFor(left)
	if err != nil {
		return nil, err
	}
	return be.ConcatColumns(left, right)
}

// SetColumnNames renames the table's columns positionally.
func SetColumnNames(t domain.Table, names []string) (domain.Table, error) {
	be, err := BackendFor(t)
	if err != nil {
		return nil, err
	}
	return be.SetColumnNames(t, names)
}

// CopyRowIdentity copies row-identity metadata from src onto derived.
func CopyRowIdentity(src, derived domain.Table) (domain.Table, error) {
	be, err := BackendFor(src)
	if err != nil {
		return nil, err
	}
	return be.CopyRowIdentity(src, derived)
}

// NumRows returns the number of rows of the table.
func NumRows(t domain.Table) (int, error) {
	be, err := BackendFor(t)
	if err != nil {
		return 0, err
	}
	return be.NumRows(t)
}

// Columns returns the table's cell data in column-major order.
func Columns(t domain.Table) ([][]any, error) {
	be, err := BackendFor(t)
	if err != nil {
		return nil, err
	}
	return be.Columns(t)
}

// SchemaOf returns the table's ordered column schema.
func SchemaOf(t domain.Table) (schema.Schema, error) {
	be, err := BackendFor(t)
	if err != nil {
		return nil, err
	}
	return be.Schema(t)
}

// FromColumnsLike builds a table of the same representation as like from
// column-major data. Transformers use it to answer in their caller's
// representation.
func FromColumnsLike(like domain.Table, names []string, columns [][]any) (domain.Table, error) {
	be, err := BackendFor(like)
	if err != nil {
		return nil, err
	}
	return be.FromColumns(names, columns)
}
