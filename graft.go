package graft

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/naming"
	"github.com/aretw0/graft/pkg/ports"
	"github.com/aretw0/graft/pkg/selectors"
	"github.com/aretw0/graft/pkg/table"
)

// Applier applies a wrapped transformer to a selected block of columns and
// grafts the result onto the untouched passthrough columns, producing a
// table with a stable, predictable schema.
//
// The lifecycle is split in two phases. FitTransform resolves the column
// selection, fits a clone of the configured transformer on the selected
// block as one joint input, resolves output names against the passthrough
// columns and freezes the whole plan as a FitRecord. Transform replays the
// frozen plan on new tables without re-deriving anything.
//
// A fitted Applier is safe for concurrent Transform calls as long as no
// fit runs at the same time; concurrent fits on the same instance are not
// synchronized and must be serialized by the caller.
type Applier struct {
	template     ports.Transformer
	cols         selectors.Selector
	keepOriginal bool
	renameTmpl   string
	renamer      *naming.Renamer
	backends     []ports.Backend
	hooks        domain.LifecycleHooks
	logger       *slog.Logger

	// Frozen fit state. Both fields are replaced together by a successful
	// fit and never mutated in place; rec == nil means not fitted.
	rec    *domain.FitRecord
	fitted ports.Transformer
}

// Option defines a functional option for configuring the Applier.
type Option func(*Applier)

// WithCols sets the column selection (default: all columns).
func WithCols(sel selectors.Selector) Option {
	return func(a *Applier) {
		a.cols = sel
	}
}

// WithKeepOriginal keeps the selected columns in the output alongside the
// transformed ones (default: false).
func WithKeepOriginal(keep bool) Option {
	return func(a *Applier) {
		a.keepOriginal = keep
	}
}

// WithRename sets the rename template applied to the transformer's output
// column names. The template must contain exactly one "{}" insertion
// point, e.g. "scaled_{}" (default: "{}", the identity).
func WithRename(template string) Option {
	return func(a *Applier) {
		a.renameTmpl = template
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Applier) {
		a.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the applier.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Applier) {
		a.logger = logger
	}
}

// WithBackends replaces the table backends used for dispatch, bypassing
// the built-in columnar and records representations.
func WithBackends(backends ...ports.Backend) Option {
	return func(a *Applier) {
		a.backends = backends
	}
}

// New initializes an Applier wrapping the given transformer template.
// The template itself is never fitted: every fit works on a fresh clone,
// so one template can safely back many Appliers.
func New(transformer ports.Transformer, opts ...Option) (*Applier, error) {
	if transformer == nil {
		return nil, fmt.Errorf("transformer is required")
	}

	a := &Applier{
		template:   transformer,
		cols:       selectors.All(),
		renameTmpl: "{}",
		backends:   table.Backends(),
	}
	for _, opt := range opts {
		opt(a)
	}

	renamer, err := naming.NewRenamer(a.renameTmpl)
	if err != nil {
		return nil, err
	}
	a.renamer = renamer

	if a.logger == nil {
		a.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return a, nil
}

// Fit fits the applier on a table. The optional target y may be nil.
// It is FitTransform discarding the result.
func (a *Applier) Fit(tbl, y domain.Table) error {
	_, err := a.FitTransform(tbl, y)
	return err
}

// FitTransform fits the applier on a table and returns the transformed
// table in one pass. On success the previous fit state is replaced
// wholesale; on failure it is left untouched.
func (a *Applier) FitTransform(tbl, y domain.Table) (domain.Table, error) {
	start := time.Now()
	out, rec, fitted, err := a.fitTransform(tbl, y)
	a.observeFit(start, tbl, rec, err)
	if err != nil {
		a.logger.Error("fit failed", "error", err)
		return nil, err
	}
	a.rec = rec
	a.fitted = fitted
	a.logger.Debug("fit complete",
		"used_inputs", len(rec.UsedInputs),
		"all_outputs", len(rec.AllOutputs),
		"duration", time.Since(start))
	return out, nil
}

func (a *Applier) fitTransform(tbl, y domain.Table) (domain.Table, *domain.FitRecord, ports.Transformer, error) {
	be, err := a.backendFor(tbl)
	if err != nil {
		return nil, nil, nil, err
	}

	allInputs, err := be.ColumnNames(tbl)
	if err != nil {
		return nil, nil, nil, err
	}
	sch, err := be.Schema(tbl)
	if err != nil {
		return nil, nil, nil, err
	}
	used, err := a.cols.Expand(sch)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := &domain.FitRecord{AllInputs: allInputs, UsedInputs: used}

	toTransform, err := be.Select(tbl, used)
	if err != nil {
		return nil, nil, nil, err
	}
	passthrough, passNames, err := a.passthrough(be, tbl, rec)
	if err != nil {
		return nil, nil, nil, err
	}

	if len(used) == 0 {
		// Degenerate pass-through mode: the transformer is never built.
		rec.AllOutputs = passNames
		result, err := be.CopyRowIdentity(tbl, passthrough)
		if err != nil {
			return nil, nil, nil, err
		}
		return result, rec, nil, nil
	}

	fitted := a.template.Clone()
	transformed, err := fitted.FitTransform(toTransform, y)
	if err != nil {
		// Transformer errors propagate unchanged.
		return nil, nil, nil, err
	}
	if outBE, beErr := a.backendFor(transformed); beErr != nil || outBE.Kind() != be.Kind() {
		return nil, nil, nil, &domain.OutputTypeError{Expected: be.Kind(), Got: transformed}
	}

	suggested, err := be.ColumnNames(transformed)
	if err != nil {
		return nil, nil, nil, err
	}
	created := naming.Pick(a.renamer.ApplyAll(suggested), passNames)

	transformed, err = be.SetColumnNames(transformed, created)
	if err != nil {
		return nil, nil, nil, err
	}
	merged, err := be.ConcatColumns(passthrough, transformed)
	if err != nil {
		return nil, nil, nil, err
	}
	result, err := be.CopyRowIdentity(tbl, merged)
	if err != nil {
		return nil, nil, nil, err
	}

	rec.CreatedOutputs = created
	rec.AllOutputs = append(slices.Clone(passNames), created...)
	return result, rec, fitted, nil
}

// Transform applies the frozen plan to a new table.
// Requires a prior successful fit.
func (a *Applier) Transform(tbl domain.Table) (domain.Table, error) {
	start := time.Now()
	out, err := a.transform(tbl)
	a.observeTransform(start, tbl, err)
	if err != nil {
		a.logger.Error("transform failed", "error", err)
		return nil, err
	}
	a.logger.Debug("transform complete", "duration", time.Since(start))
	return out, nil
}

func (a *Applier) transform(tbl domain.Table) (domain.Table, error) {
	if a.rec == nil {
		return nil, domain.ErrNotFitted
	}
	be, err := a.backendFor(tbl)
	if err != nil {
		return nil, err
	}

	// Select even when the frozen selection is empty, so a table missing
	// required columns still fails with ColumnNotFoundError.
	toTransform, err := be.Select(tbl, a.rec.UsedInputs)
	if err != nil {
		return nil, err
	}
	var passthrough domain.Table
	if a.keepOriginal {
		passthrough = tbl
	} else {
		passthrough, err = be.Select(tbl, a.rec.PassthroughInputs())
		if err != nil {
			return nil, err
		}
	}

	if len(a.rec.UsedInputs) == 0 {
		return passthrough, nil
	}

	transformed, err := a.fitted.Transform(toTransform)
	if err != nil {
		// Transformer errors propagate unchanged.
		return nil, err
	}
	// The output representation was validated at fit time and is trusted
	// here; the frozen names are applied without re-resolution.
	transformed, err = be.SetColumnNames(transformed, a.rec.CreatedOutputs)
	if err != nil {
		return nil, err
	}
	merged, err := be.ConcatColumns(passthrough, transformed)
	if err != nil {
		return nil, err
	}
	return be.CopyRowIdentity(tbl, merged)
}

// FeatureNamesOut returns the output column names frozen by the last fit,
// passthrough columns first. Requires a prior successful fit.
func (a *Applier) FeatureNamesOut() ([]string, error) {
	if a.rec == nil {
		return nil, domain.ErrNotFitted
	}
	return slices.Clone(a.rec.AllOutputs), nil
}

// Record returns a copy of the FitRecord frozen by the last fit.
// Requires a prior successful fit.
func (a *Applier) Record() (*domain.FitRecord, error) {
	if a.rec == nil {
		return nil, domain.ErrNotFitted
	}
	return a.rec.Clone(), nil
}

// Fitted reports whether the applier has completed a successful fit.
func (a *Applier) Fitted() bool {
	return a.rec != nil
}

// passthrough splits off the columns routed around the transformer: the
// whole table when keepOriginal is set, the unselected columns otherwise.
func (a *Applier) passthrough(be ports.Backend, tbl domain.Table, rec *domain.FitRecord) (domain.Table, []string, error) {
	if a.keepOriginal {
		return tbl, slices.Clone(rec.AllInputs), nil
	}
	names := rec.PassthroughInputs()
	out, err := be.Select(tbl, names)
	if err != nil {
		return nil, nil, err
	}
	return out, names, nil
}

func (a *Applier) backendFor(t domain.Table) (ports.Backend, error) {
	for _, be := range a.backends {
		if be.Owns(t) {
			return be, nil
		}
	}
	return nil, &domain.UnsupportedTableError{Value: t}
}

func (a *Applier) observeFit(start time.Time, tbl domain.Table, rec *domain.FitRecord, err error) {
	if a.hooks.OnFit == nil {
		return
	}
	ev := &domain.FitEvent{
		Timestamp: start,
		Duration:  time.Since(start),
		Err:       err,
	}
	if be, beErr := a.backendFor(tbl); beErr == nil {
		ev.Backend = be.Kind()
		ev.Rows, _ = be.NumRows(tbl)
	}
	if rec != nil {
		ev.Selected = len(rec.UsedInputs)
		ev.Outputs = len(rec.AllOutputs)
	}
	a.hooks.OnFit(ev)
}

func (a *Applier) observeTransform(start time.Time, tbl domain.Table, err error) {
	if a.hooks.OnTransform == nil {
		return
	}
	ev := &domain.TransformEvent{
		Timestamp: start,
		Duration:  time.Since(start),
		Err:       err,
	}
	if be, beErr := a.backendFor(tbl); beErr == nil {
		ev.Backend = be.Kind()
		ev.Rows, _ = be.NumRows(tbl)
	}
	a.hooks.OnTransform(ev)
}
