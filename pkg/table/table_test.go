package table_test

import (
	"errors"
	"testing"

	"github.com/aretw0/graft/pkg/adapters/columnar"
	"github.com/aretw0/graft/pkg/adapters/records"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendFor(t *testing.T) {
	cf, err := columnar.New([]string{"a"}, [][]any{{1}})
	require.NoError(t, err)
	rf, err := records.New([]string{"a"}, [][]any{{1}})
	require.NoError(t, err)

	be, err := table.BackendFor(cf)
	require.NoError(t, err)
	assert.Equal(t, "columnar", be.Kind())

	be, err = table.BackendFor(rf)
	require.NoError(t, err)
	assert.Equal(t, "records", be.Kind())

	_, err = table.BackendFor("nope")
	var unsupported *domain.UnsupportedTableError
	assert.True(t, errors.As(err, &unsupported))
}

func TestDispatchHelpers(t *testing.T) {
	for _, tc := range []struct {
		kind string
		tbl  domain.Table
	}{
		{"columnar", mustColumnar(t)},
		{"records", mustRecords(t)},
	} {
		t.Run(tc.kind, func(t *testing.T) {
			names, err := table.ColumnNames(tc.tbl)
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, names)

			n, err := table.NumRows(tc.tbl)
			require.NoError(t, err)
			assert.Equal(t, 2, n)

			sub, err := table.Select(tc.tbl, []string{"b"})
			require.NoError(t, err)
			subNames, err := table.ColumnNames(sub)
			require.NoError(t, err)
			assert.Equal(t, []string{"b"}, subNames)

			cols, err := table.Columns(sub)
			require.NoError(t, err)
			assert.Equal(t, []any{"x", "y"}, cols[0])

			s, err := table.SchemaOf(tc.tbl)
			require.NoError(t, err)
			require.Len(t, s, 2)
			assert.Equal(t, "int", s[0].Kind.Name())

			like, err := table.FromColumnsLike(tc.tbl, []string{"z"}, [][]any{{true, false}})
			require.NoError(t, err)
			be, err := table.BackendFor(like)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, be.Kind())
		})
	}
}

func mustColumnar(t *testing.T) domain.Table {
	t.Helper()
	f, err := columnar.New([]string{"a", "b"}, [][]any{{1, 2}, {"x", "y"}})
	require.NoError(t, err)
	return f
}

func mustRecords(t *testing.T) domain.Table {
	t.Helper()
	f, err := records.New([]string{"a", "b"}, [][]any{{1, "x"}, {2, "y"}})
	require.NoError(t, err)
	return f
}
