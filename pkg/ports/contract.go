package ports

import (
	"testing"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunBackendContract runs a suite of tests to verify that a Backend
// implementation adheres to the semantics the applier relies on.
func RunBackendContract(t *testing.T, be Backend) {
	mk := func(names []string, cols [][]any) domain.Table {
		tbl, err := be.FromColumns(names, cols)
		require.NoError(t, err, "FromColumns should accept well-formed input")
		return tbl
	}

	t.Run("Kind and Owns", func(t *testing.T) {
		assert.NotEmpty(t, be.Kind())

		tbl := mk([]string{"a"}, [][]any{{1, 2}})
		assert.True(t, be.Owns(tbl), "backend should own its own tables")
		assert.False(t, be.Owns(42), "backend should not own arbitrary values")
		assert.False(t, be.Owns(nil), "backend should not own nil")
	})

	t.Run("FromColumns rejects malformed input", func(t *testing.T) {
		_, err := be.FromColumns([]string{"a", "a"}, [][]any{{1}, {2}})
		assert.Error(t, err, "duplicate names should be rejected")

		_, err = be.FromColumns([]string{"a", "b"}, [][]any{{1, 2}, {3}})
		assert.Error(t, err, "ragged columns should be rejected")

		_, err = be.FromColumns([]string{"a"}, [][]any{{1}, {2}})
		assert.Error(t, err, "name/column arity mismatch should be rejected")
	})

	t.Run("ColumnNames and NumRows", func(t *testing.T) {
		tbl := mk([]string{"a", "b", "c"}, [][]any{{1, 2}, {"x", "y"}, {true, false}})

		names, err := be.ColumnNames(tbl)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, names)

		n, err := be.NumRows(tbl)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("Columns returns copies", func(t *testing.T) {
		tbl := mk([]string{"a"}, [][]any{{1, 2}})

		cols, err := be.Columns(tbl)
		require.NoError(t, err)
		require.Len(t, cols, 1)
		assert.Equal(t, []any{1, 2}, cols[0])

		cols[0][0] = 99
		again, err := be.Columns(tbl)
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2}, again[0], "mutating a returned column should not affect the table")
	})

	t.Run("Select subsets and reorders", func(t *testing.T) {
		tbl := mk([]string{"a", "b", "c"}, [][]any{{1, 2}, {"x", "y"}, {true, false}})

		sub, err := be.Select(tbl, []string{"c", "a"})
		require.NoError(t, err)

		names, err := be.ColumnNames(sub)
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a"}, names)

		cols, err := be.Columns(sub)
		require.NoError(t, err)
		assert.Equal(t, []any{true, false}, cols[0])
		assert.Equal(t, []any{1, 2}, cols[1])

		// The source table is untouched.
		orig, err := be.ColumnNames(tbl)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, orig)
	})

	t.Run("Select of no columns keeps row count", func(t *testing.T) {
		tbl := mk([]string{"a", "b"}, [][]any{{1, 2, 3}, {4, 5, 6}})

		empty, err := be.Select(tbl, nil)
		require.NoError(t, err)

		names, err := be.ColumnNames(empty)
		require.NoError(t, err)
		assert.Empty(t, names)

		n, err := be.NumRows(empty)
		require.NoError(t, err)
		assert.Equal(t, 3, n, "a zero-column selection should keep the row count")
	})

	t.Run("Select missing column", func(t *testing.T) {
		tbl := mk([]string{"a"}, [][]any{{1}})

		_, err := be.Select(tbl, []string{"a", "nope"})
		var notFound *domain.ColumnNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, []string{"nope"}, notFound.Missing)
	})

	t.Run("ConcatColumns", func(t *testing.T) {
		left := mk([]string{"a", "b"}, [][]any{{1, 2}, {"x", "y"}})
		right := mk([]string{"c"}, [][]any{{true, false}})

		out, err := be.ConcatColumns(left, right)
		require.NoError(t, err)

		names, err := be.ColumnNames(out)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, names)

		cols, err := be.Columns(out)
		require.NoError(t, err)
		assert.Equal(t, []any{true, false}, cols[2])
	})

	t.Run("ConcatColumns with zero-column left", func(t *testing.T) {
		base := mk([]string{"a"}, [][]any{{1, 2}})
		empty, err := be.Select(base, nil)
		require.NoError(t, err)

		out, err := be.ConcatColumns(empty, base)
		require.NoError(t, err)

		names, err := be.ColumnNames(out)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, names)
	})

	t.Run("ConcatColumns rejects mismatches", func(t *testing.T) {
		left := mk([]string{"a"}, [][]any{{1, 2}})
		short := mk([]string{"b"}, [][]any{{1}})
		dup := mk([]string{"a"}, [][]any{{3, 4}})

		_, err := be.ConcatColumns(left, short)
		assert.Error(t, err, "row count mismatch should be rejected")

		_, err = be.ConcatColumns(left, dup)
		assert.Error(t, err, "duplicate column names should be rejected")
	})

	t.Run("SetColumnNames", func(t *testing.T) {
		tbl := mk([]string{"a", "b"}, [][]any{{1}, {2}})

		renamed, err := be.SetColumnNames(tbl, []string{"x", "y"})
		require.NoError(t, err)

		names, err := be.ColumnNames(renamed)
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, names)

		// The source table is untouched.
		orig, err := be.ColumnNames(tbl)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, orig)

		_, err = be.SetColumnNames(tbl, []string{"only-one"})
		assert.Error(t, err, "arity mismatch should be rejected")

		_, err = be.SetColumnNames(tbl, []string{"x", "x"})
		assert.Error(t, err, "duplicate names should be rejected")
	})

	t.Run("CopyRowIdentity keeps shape", func(t *testing.T) {
		src := mk([]string{"a"}, [][]any{{1, 2}})
		derived := mk([]string{"out"}, [][]any{{10, 20}})

		out, err := be.CopyRowIdentity(src, derived)
		require.NoError(t, err)

		names, err := be.ColumnNames(out)
		require.NoError(t, err)
		assert.Equal(t, []string{"out"}, names)

		n, err := be.NumRows(out)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("Schema covers every column", func(t *testing.T) {
		tbl := mk([]string{"n", "s"}, [][]any{{1, 2}, {"x", "y"}})

		s, err := be.Schema(tbl)
		require.NoError(t, err)
		require.Len(t, s, 2)
		assert.Equal(t, "n", s[0].Name)
		assert.Equal(t, "int", s[0].Kind.Name())
		assert.Equal(t, "s", s[1].Name)
		assert.Equal(t, "string", s[1].Kind.Name())
	})

	t.Run("Operations reject foreign values", func(t *testing.T) {
		_, err := be.ColumnNames("not a table")
		var unsupported *domain.UnsupportedTableError
		assert.ErrorAs(t, err, &unsupported)
	})
}
