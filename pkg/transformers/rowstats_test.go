package transformers_test

import (
	"testing"

	"github.com/aretw0/graft/pkg/adapters/columnar"
	"github.com/aretw0/graft/pkg/transformers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowStats(t *testing.T) {
	tbl, err := columnar.New([]string{"a", "b", "c"}, [][]any{
		{1.0, 4.0},
		{2.0, 5.0},
		{3.0, 6.0},
	})
	require.NoError(t, err)

	rs, err := transformers.NewRowStats("mean", "max")
	require.NoError(t, err)

	out, err := rs.FitTransform(tbl, nil)
	require.NoError(t, err)

	f := out.(*columnar.Frame)
	assert.Equal(t, []string{"mean", "max"}, f.Names())

	mean, _ := f.Column("mean")
	assert.Equal(t, []any{2.0, 5.0}, mean)
	max, _ := f.Column("max")
	assert.Equal(t, []any{3.0, 6.0}, max)
}

func TestRowStatsDefaults(t *testing.T) {
	rs, err := transformers.NewRowStats()
	require.NoError(t, err)

	tbl, err := columnar.New([]string{"a"}, [][]any{{2.0}})
	require.NoError(t, err)

	out, err := rs.Transform(tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{"mean", "sum", "min", "max"}, out.(*columnar.Frame).Names())
}

func TestRowStatsNilRow(t *testing.T) {
	tbl, err := columnar.New([]string{"a", "b"}, [][]any{{nil, 1.0}, {nil, 3.0}})
	require.NoError(t, err) // row 0 is nil in both columns, row 1 holds 1.0 and 3.0

	rs, err := transformers.NewRowStats("sum")
	require.NoError(t, err)

	out, err := rs.Transform(tbl)
	require.NoError(t, err)
	sum, _ := out.(*columnar.Frame).Column("sum")
	assert.Equal(t, []any{nil, 4.0}, sum, "a row with no numeric cells should aggregate to nil")
}

func TestRowStatsValidation(t *testing.T) {
	_, err := transformers.NewRowStats("median")
	assert.ErrorContains(t, err, "unknown statistic")

	tbl, err := columnar.New([]string{"a"}, [][]any{{"oops"}})
	require.NoError(t, err)

	rs, err := transformers.NewRowStats("sum")
	require.NoError(t, err)
	_, err = rs.Transform(tbl)
	assert.ErrorContains(t, err, "non-numeric")
}
