package graft_test

import (
	"errors"
	"testing"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/pkg/adapters/columnar"
	"github.com/aretw0/graft/pkg/adapters/records"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/ports"
	"github.com/aretw0/graft/pkg/selectors"
	"github.com/aretw0/graft/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTransformer replaces its input block with deterministic columns
// named outNames, regardless of the input's content.
type stubTransformer struct {
	outNames []string
	err      error        // returned from fit/transform when set
	badOut   domain.Table // returned as-is from FitTransform when set
	fits     int          // FitTransform calls on this exact instance
	lastY    domain.Table
	clones   []*stubTransformer
}

func (s *stubTransformer) Clone() ports.Transformer {
	c := &stubTransformer{outNames: s.outNames, err: s.err, badOut: s.badOut}
	s.clones = append(s.clones, c)
	return c
}

func (s *stubTransformer) FitTransform(tbl, y domain.Table) (domain.Table, error) {
	s.fits++
	s.lastY = y
	if s.err != nil {
		return nil, s.err
	}
	if s.badOut != nil {
		return s.badOut, nil
	}
	return s.produce(tbl)
}

func (s *stubTransformer) Transform(tbl domain.Table) (domain.Table, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.produce(tbl)
}

func (s *stubTransformer) produce(tbl domain.Table) (domain.Table, error) {
	n, err := table.NumRows(tbl)
	if err != nil {
		return nil, err
	}
	cols := make([][]any, len(s.outNames))
	for i := range cols {
		col := make([]any, n)
		for r := range col {
			col[r] = i*100 + r
		}
		cols[i] = col
	}
	return table.FromColumnsLike(tbl, s.outNames, cols)
}

var _ ports.Transformer = (*stubTransformer)(nil)

func mkTable(t *testing.T, names []string, cols [][]any) *columnar.Frame {
	t.Helper()
	f, err := columnar.New(names, cols)
	require.NoError(t, err)
	return f
}

func abcd(t *testing.T) *columnar.Frame {
	t.Helper()
	return mkTable(t,
		[]string{"a", "b", "c", "d"},
		[][]any{{1, 2}, {3, 4}, {"c1", "c2"}, {"d1", "d2"}},
	)
}

func TestFitTransformSubset(t *testing.T) {
	stub := &stubTransformer{outNames: []string{"out0", "out1"}}
	app, err := graft.New(stub, graft.WithCols(selectors.Cols("a", "b")))
	require.NoError(t, err)

	out, err := app.FitTransform(abcd(t), nil)
	require.NoError(t, err)

	names, err := table.ColumnNames(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d", "out0", "out1"}, names)

	// Passthrough cells are untouched.
	c, _ := out.(*columnar.Frame).Column("c")
	assert.Equal(t, []any{"c1", "c2"}, c)

	rec, err := app.Record()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, rec.AllInputs)
	assert.Equal(t, []string{"a", "b"}, rec.UsedInputs)
	assert.Equal(t, []string{"c", "d", "out0", "out1"}, rec.AllOutputs)
	assert.Equal(t, []string{"out0", "out1"}, rec.CreatedOutputs)

	fno, err := app.FeatureNamesOut()
	require.NoError(t, err)
	assert.Equal(t, rec.AllOutputs, fno)

	assert.Zero(t, stub.fits, "the template must never be fitted, only clones")
	require.Len(t, stub.clones, 1)
	assert.Equal(t, 1, stub.clones[0].fits)
}

func TestFitTransformKeepOriginal(t *testing.T) {
	stub := &stubTransformer{outNames: []string{"out0", "out1"}}
	app, err := graft.New(stub,
		graft.WithCols(selectors.Cols("a", "b")),
		graft.WithKeepOriginal(true),
	)
	require.NoError(t, err)

	out, err := app.FitTransform(abcd(t), nil)
	require.NoError(t, err)

	names, err := table.ColumnNames(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "out0", "out1"}, names)

	// The selected columns appear unchanged.
	a, _ := out.(*columnar.Frame).Column("a")
	assert.Equal(t, []any{1, 2}, a)
}

func TestFitTransformRename(t *testing.T) {
	stub := &stubTransformer{outNames: []string{"out0", "out1"}}
	app, err := graft.New(stub,
		graft.WithCols(selectors.Cols("a", "b")),
		graft.WithRename("t_{}"),
	)
	require.NoError(t, err)

	_, err = app.FitTransform(abcd(t), nil)
	require.NoError(t, err)

	rec, err := app.Record()
	require.NoError(t, err)
	assert.Equal(t, []string{"t_out0", "t_out1"}, rec.CreatedOutputs)
}

func TestNotFitted(t *testing.T) {
	app, err := graft.New(&stubTransformer{outNames: []string{"out"}})
	require.NoError(t, err)

	assert.False(t, app.Fitted())

	_, err = app.Transform(abcd(t))
	assert.ErrorIs(t, err, domain.ErrNotFitted)

	_, err = app.FeatureNamesOut()
	assert.ErrorIs(t, err, domain.ErrNotFitted)

	_, err = app.Record()
	assert.ErrorIs(t, err, domain.ErrNotFitted)
}

func TestTransformMissingFrozenColumn(t *testing.T) {
	app, err := graft.New(&stubTransformer{outNames: []string{"out"}},
		graft.WithCols(selectors.Cols("a", "b")))
	require.NoError(t, err)

	_, err = app.FitTransform(abcd(t), nil)
	require.NoError(t, err)

	// The serve-time table is missing the frozen column "b".
	serve := mkTable(t, []string{"a", "c", "d"}, [][]any{{1}, {"c"}, {"d"}})
	_, err = app.Transform(serve)

	var notFound *domain.ColumnNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, []string{"b"}, notFound.Missing)
}

func TestTransformMissingPassthroughColumn(t *testing.T) {
	app, err := graft.New(&stubTransformer{outNames: []string{"out"}},
		graft.WithCols(selectors.Cols("a", "b")))
	require.NoError(t, err)

	_, err = app.FitTransform(abcd(t), nil)
	require.NoError(t, err)

	// The frozen complement (c, d) is required too when the original
	// columns are not kept.
	serve := mkTable(t, []string{"a", "b", "c"}, [][]any{{1}, {2}, {"c"}})
	_, err = app.Transform(serve)

	var notFound *domain.ColumnNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, []string{"d"}, notFound.Missing)
}

func TestTransformReplaysFit(t *testing.T) {
	stub := &stubTransformer{outNames: []string{"out0", "out1"}}
	app, err := graft.New(stub, graft.WithCols(selectors.Cols("a", "b")))
	require.NoError(t, err)

	fitOut, err := app.FitTransform(abcd(t), nil)
	require.NoError(t, err)

	servOut, err := app.Transform(abcd(t))
	require.NoError(t, err)

	assert.True(t, fitOut.(*columnar.Frame).Equal(servOut.(*columnar.Frame)),
		"transform on an identical table should reproduce the fit output")
}

func TestSelectionErrorAtFit(t *testing.T) {
	app, err := graft.New(&stubTransformer{outNames: []string{"out"}},
		graft.WithCols(selectors.Cols("a", "nope")))
	require.NoError(t, err)

	_, err = app.FitTransform(abcd(t), nil)

	var selErr *domain.SelectionError
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, []string{"nope"}, selErr.Missing)
	assert.False(t, app.Fitted(), "a failed fit must not leave fit state behind")
}

func TestEmptySelection(t *testing.T) {
	for _, keep := range []bool{false, true} {
		name := "keep_original=false"
		if keep {
			name = "keep_original=true"
		}
		t.Run(name, func(t *testing.T) {
			stub := &stubTransformer{outNames: []string{"out"}}
			app, err := graft.New(stub,
				graft.WithCols(selectors.Cols()),
				graft.WithKeepOriginal(keep),
			)
			require.NoError(t, err)

			tbl := abcd(t)
			out, err := app.FitTransform(tbl, nil)
			require.NoError(t, err)
			assert.True(t, tbl.Equal(out.(*columnar.Frame)), "output should equal the passthrough exactly")

			rec, err := app.Record()
			require.NoError(t, err)
			assert.Empty(t, rec.CreatedOutputs)
			assert.Equal(t, []string{"a", "b", "c", "d"}, rec.AllOutputs)

			served, err := app.Transform(tbl)
			require.NoError(t, err)
			assert.True(t, tbl.Equal(served.(*columnar.Frame)))

			assert.Empty(t, stub.clones, "the transformer must never be cloned or invoked for an empty selection")
		})
	}
}

func TestEmptySelectionRecords(t *testing.T) {
	stub := &stubTransformer{outNames: []string{"out"}}
	app, err := graft.New(stub, graft.WithCols(selectors.Cols()))
	require.NoError(t, err)

	tbl, err := records.New(
		[]string{"a", "b"},
		[][]any{{1, "x"}, {2, "y"}},
	)
	require.NoError(t, err)

	out, err := app.FitTransform(tbl, nil)
	require.NoError(t, err)
	assert.True(t, tbl.Equal(out.(*records.Frame)))

	served, err := app.Transform(tbl)
	require.NoError(t, err)
	assert.True(t, tbl.Equal(served.(*records.Frame)))
	assert.Empty(t, stub.clones)
}

func TestNamingDeterminismAcrossFits(t *testing.T) {
	mk := func(v1, v2 any) *columnar.Frame {
		return mkTable(t, []string{"a", "out"}, [][]any{{v1}, {v2}})
	}
	fit := func(tbl *columnar.Frame) []string {
		app, err := graft.New(&stubTransformer{outNames: []string{"out"}},
			graft.WithCols(selectors.Cols("a")))
		require.NoError(t, err)
		_, err = app.FitTransform(tbl, nil)
		require.NoError(t, err)
		rec, err := app.Record()
		require.NoError(t, err)
		return rec.CreatedOutputs
	}

	first := fit(mk(1, "x"))
	second := fit(mk(99, "zzz"))
	assert.Equal(t, first, second, "identical schemas should yield identical created outputs")
}

func TestCollisionWithPassthrough(t *testing.T) {
	tbl := mkTable(t, []string{"a", "b", "out0"}, [][]any{{1}, {2}, {"keep"}})
	app, err := graft.New(&stubTransformer{outNames: []string{"out0", "out1"}},
		graft.WithCols(selectors.Cols("a", "b")))
	require.NoError(t, err)

	out, err := app.FitTransform(tbl, nil)
	require.NoError(t, err)

	names, err := table.ColumnNames(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"out0", "out0_1", "out1"}, names)

	rec, err := app.Record()
	require.NoError(t, err)
	assert.Equal(t, []string{"out0_1", "out1"}, rec.CreatedOutputs)

	// The passthrough column kept its name and cells.
	keep, _ := out.(*columnar.Frame).Column("out0")
	assert.Equal(t, []any{"keep"}, keep)
}

func TestFailedRefitKeepsPreviousFit(t *testing.T) {
	app, err := graft.New(&stubTransformer{outNames: []string{"out"}},
		graft.WithCols(selectors.Cols("a", "b")))
	require.NoError(t, err)

	_, err = app.FitTransform(abcd(t), nil)
	require.NoError(t, err)
	before, err := app.Record()
	require.NoError(t, err)

	// Refit on a table missing the selected columns fails...
	_, err = app.FitTransform(mkTable(t, []string{"x"}, [][]any{{1}}), nil)
	var selErr *domain.SelectionError
	require.True(t, errors.As(err, &selErr))

	// ...and the previous plan keeps working.
	after, err := app.Record()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, err = app.Transform(abcd(t))
	assert.NoError(t, err)
}

func TestTransformerErrorsPropagateUnwrapped(t *testing.T) {
	boom := errors.New("boom")
	app, err := graft.New(&stubTransformer{outNames: []string{"out"}, err: boom})
	require.NoError(t, err)

	_, err = app.FitTransform(abcd(t), nil)
	assert.Equal(t, boom, err, "transformer errors must propagate unchanged")
	assert.False(t, app.Fitted())
}

func TestOutputTypeValidation(t *testing.T) {
	t.Run("non-table output", func(t *testing.T) {
		app, err := graft.New(&stubTransformer{badOut: "not a table"})
		require.NoError(t, err)

		_, err = app.FitTransform(abcd(t), nil)
		var typeErr *domain.OutputTypeError
		require.True(t, errors.As(err, &typeErr))
		assert.Equal(t, "columnar", typeErr.Expected)
	})

	t.Run("wrong representation", func(t *testing.T) {
		foreign, err := records.New([]string{"out"}, [][]any{{1}, {2}})
		require.NoError(t, err)

		app, err := graft.New(&stubTransformer{badOut: foreign})
		require.NoError(t, err)

		_, err = app.FitTransform(abcd(t), nil)
		var typeErr *domain.OutputTypeError
		require.True(t, errors.As(err, &typeErr))
	})
}

func TestUnsupportedTable(t *testing.T) {
	app, err := graft.New(&stubTransformer{outNames: []string{"out"}})
	require.NoError(t, err)

	_, err = app.FitTransform([]int{1, 2, 3}, nil)
	var unsupported *domain.UnsupportedTableError
	assert.True(t, errors.As(err, &unsupported))
}

func TestRowIdentityPreserved(t *testing.T) {
	base := abcd(t)
	tbl, err := base.WithIndex([]any{"r1", "r2"})
	require.NoError(t, err)

	app, err := graft.New(&stubTransformer{outNames: []string{"out"}},
		graft.WithCols(selectors.Cols("a", "b")))
	require.NoError(t, err)

	out, err := app.FitTransform(tbl, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"r1", "r2"}, out.(*columnar.Frame).Index())

	served, err := app.Transform(tbl)
	require.NoError(t, err)
	assert.Equal(t, []any{"r1", "r2"}, served.(*columnar.Frame).Index())
}

func TestCrossRepresentationServe(t *testing.T) {
	app, err := graft.New(&stubTransformer{outNames: []string{"out"}},
		graft.WithCols(selectors.Cols("a", "b")))
	require.NoError(t, err)

	_, err = app.FitTransform(abcd(t), nil)
	require.NoError(t, err)

	serve, err := records.New(
		[]string{"a", "b", "c", "d"},
		[][]any{{1, 3, "c1", "d1"}},
	)
	require.NoError(t, err)

	out, err := app.Transform(serve)
	require.NoError(t, err)

	names, err := table.ColumnNames(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d", "out"}, names)
	_, ok := out.(*records.Frame)
	assert.True(t, ok, "the result should stay in the serve-time representation")
}

func TestTargetIsForwarded(t *testing.T) {
	stub := &stubTransformer{outNames: []string{"out"}}
	app, err := graft.New(stub)
	require.NoError(t, err)

	y := mkTable(t, []string{"label"}, [][]any{{0, 1}})
	_, err = app.FitTransform(abcd(t), y)
	require.NoError(t, err)

	require.Len(t, stub.clones, 1)
	assert.Same(t, y, stub.clones[0].lastY)
}

func TestHooks(t *testing.T) {
	var fits, transforms int
	var lastFit *domain.FitEvent

	hooks := domain.LifecycleHooks{
		OnFit: func(ev *domain.FitEvent) {
			fits++
			lastFit = ev
		},
		OnTransform: func(ev *domain.TransformEvent) {
			transforms++
		},
	}

	app, err := graft.New(&stubTransformer{outNames: []string{"out"}},
		graft.WithCols(selectors.Cols("a", "b")),
		graft.WithLifecycleHooks(hooks),
	)
	require.NoError(t, err)

	_, err = app.FitTransform(abcd(t), nil)
	require.NoError(t, err)
	require.Equal(t, 1, fits)
	assert.NoError(t, lastFit.Err)
	assert.Equal(t, "columnar", lastFit.Backend)
	assert.Equal(t, 2, lastFit.Rows)
	assert.Equal(t, 2, lastFit.Selected)
	assert.Equal(t, 3, lastFit.Outputs)

	_, err = app.Transform(abcd(t))
	require.NoError(t, err)
	assert.Equal(t, 1, transforms)

	// Failures are observed too.
	_, err = app.FitTransform(mkTable(t, []string{"x"}, [][]any{{1}}), nil)
	require.Error(t, err)
	assert.Equal(t, 2, fits)
	assert.Error(t, lastFit.Err)
}

func TestNewValidation(t *testing.T) {
	_, err := graft.New(nil)
	assert.ErrorContains(t, err, "transformer is required")

	_, err = graft.New(&stubTransformer{}, graft.WithRename("no placeholder"))
	assert.ErrorContains(t, err, "exactly one {}")
}
