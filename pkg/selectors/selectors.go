// Package selectors expresses column selections.
//
// A Selector is a declarative description of which columns of a table a
// transformation should consume. It stays symbolic until expanded against
// a concrete table's schema, which happens exactly once, at fit time; the
// resulting name list is frozen by the applier and replayed verbatim on
// every subsequent transform.
//
// Explicit selections (Cols) resolve in listed order and fail when a named
// column is absent. Pattern and predicate selections (Glob, Regex, Where,
// Numeric, OfKind) resolve in table order and may legitimately match
// nothing.
package selectors

import (
	"fmt"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/schema"
)

// Selector describes a column selection that can be expanded against a
// concrete table schema into an explicit, ordered list of column names.
type Selector interface {
	// Expand resolves the selection. Explicit selectors return
	// domain.SelectionError when a referenced column is absent.
	Expand(s schema.Schema) ([]string, error)

	// String describes the selection for logs and reports.
	String() string
}

// --- All ---

type allSelector struct{}

// All selects every column, in table order. It is the default selection.
func All() Selector { return allSelector{} }

func (allSelector) Expand(s schema.Schema) ([]string, error) { return s.Names(), nil }

func (allSelector) String() string { return "all()" }

// --- Cols ---

type colsSelector struct {
	names []string
}

// Cols selects exactly the named columns, in the given order.
// Expansion fails with domain.SelectionError if any name is absent.
func Cols(names ...string) Selector {
	return colsSelector{names: slices.Clone(names)}
}

func (c colsSelector) Expand(s schema.Schema) ([]string, error) {
	var missing []string
	for _, name := range c.names {
		if !s.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SelectionError{Missing: missing, Available: s.Names()}
	}
	return slices.Clone(c.names), nil
}

func (c colsSelector) String() string {
	return fmt.Sprintf("cols(%s)", strings.Join(c.names, ", "))
}

// --- Glob ---

type globSelector struct {
	pattern string
}

// Glob selects the columns whose name matches a shell-style pattern
// (e.g., "x_*"), in table order. Matching nothing is not an error.
func Glob(pattern string) Selector {
	return globSelector{pattern: pattern}
}

func (g globSelector) Expand(s schema.Schema) ([]string, error) {
	var names []string
	for _, c := range s {
		ok, err := path.Match(g.pattern, c.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", g.pattern, err)
		}
		if ok {
			names = append(names, c.Name)
		}
	}
	return names, nil
}

func (g globSelector) String() string {
	return fmt.Sprintf("glob(%s)", g.pattern)
}

// --- Regex ---

type regexSelector struct {
	pattern string
	re      *regexp.Regexp
	err     error
}

// Regex selects the columns whose name matches a regular expression, in
// table order. An invalid pattern surfaces when the selector is expanded.
func Regex(pattern string) Selector {
	re, err := regexp.Compile(pattern)
	return regexSelector{pattern: pattern, re: re, err: err}
}

func (r regexSelector) Expand(s schema.Schema) ([]string, error) {
	if r.err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", r.pattern, r.err)
	}
	var names []string
	for _, c := range s {
		if r.re.MatchString(c.Name) {
			names = append(names, c.Name)
		}
	}
	return names, nil
}

func (r regexSelector) String() string {
	return fmt.Sprintf("regex(%s)", r.pattern)
}

// --- Where ---

type whereSelector struct {
	desc string
	pred func(schema.Column) bool
}

// Where selects the columns satisfying a predicate over the schema, in
// table order. The description is used by String only.
func Where(desc string, pred func(schema.Column) bool) Selector {
	return whereSelector{desc: desc, pred: pred}
}

func (w whereSelector) Expand(s schema.Schema) ([]string, error) {
	var names []string
	for _, c := range s {
		if w.pred(c) {
			names = append(names, c.Name)
		}
	}
	return names, nil
}

func (w whereSelector) String() string {
	return fmt.Sprintf("where(%s)", w.desc)
}

// Numeric selects the columns whose kind is int or float, in table order.
func Numeric() Selector {
	return Where("numeric", func(c schema.Column) bool {
		return schema.Numeric(c.Kind)
	})
}

// OfKind selects the columns whose kind name is one of the given names,
// in table order.
func OfKind(kinds ...string) Selector {
	want := slices.Clone(kinds)
	return Where(strings.Join(want, "|"), func(c schema.Column) bool {
		return slices.Contains(want, c.Kind.Name())
	})
}
