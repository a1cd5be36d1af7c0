package records_test

import (
	"testing"

	"github.com/aretw0/graft/pkg/adapters/records"
	"github.com/aretw0/graft/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsBackend_Contract(t *testing.T) {
	ports.RunBackendContract(t, records.NewBackend())
}

func TestCopyRowIdentityIsNoOp(t *testing.T) {
	be := records.NewBackend()

	src, err := records.New([]string{"a"}, [][]any{{1}, {2}})
	require.NoError(t, err)
	derived, err := records.New([]string{"out"}, [][]any{{10}, {20}})
	require.NoError(t, err)

	out, err := be.CopyRowIdentity(src, derived)
	require.NoError(t, err)
	assert.True(t, derived.Equal(out.(*records.Frame)))
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		rows    [][]any
		wantErr bool
	}{
		{"well formed", []string{"a", "b"}, [][]any{{1, "x"}, {2, "y"}}, false},
		{"no rows", []string{"a"}, nil, false},
		{"duplicate names", []string{"a", "a"}, nil, true},
		{"ragged row", []string{"a", "b"}, [][]any{{1, "x"}, {2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := records.New(tt.header, tt.rows)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRowsAndColumnAccessors(t *testing.T) {
	f, err := records.New([]string{"a", "b"}, [][]any{{1, "x"}, {2, "y"}})
	require.NoError(t, err)

	rows := f.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []any{1, "x"}, rows[0])

	// Accessor results are copies.
	rows[0][0] = 99
	assert.Equal(t, []any{1, "x"}, f.Rows()[0])

	col, ok := f.Column("b")
	require.True(t, ok)
	assert.Equal(t, []any{"x", "y"}, col)

	_, ok = f.Column("missing")
	assert.False(t, ok)
}
