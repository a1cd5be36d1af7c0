// Package naming resolves the final names of transformed output columns.
//
// Two steps happen at fit time: the configured rename template is applied
// to each name the wrapped transformer produced, then Pick reconciles the
// results against the passthrough column names so the merged table never
// carries duplicates. Both steps are pure and deterministic; re-fitting on
// an identical schema reproduces identical names.
package naming

import (
	"fmt"
	"strings"
)

// Renamer rewrites a column name through a template with exactly one "{}"
// insertion point, e.g. "scaled_{}". The "{}" template is the identity.
type Renamer struct {
	prefix string
	suffix string
}

// NewRenamer validates the template and builds a Renamer.
func NewRenamer(template string) (*Renamer, error) {
	if strings.Count(template, "{}") != 1 {
		return nil, fmt.Errorf("rename template %q must contain exactly one {}", template)
	}
	prefix, suffix, _ := strings.Cut(template, "{}")
	return &Renamer{prefix: prefix, suffix: suffix}, nil
}

// Identity returns the "{}" renamer.
func Identity() *Renamer {
	return &Renamer{}
}

// Apply rewrites one name.
func (r *Renamer) Apply(name string) string {
	return r.prefix + name + r.suffix
}

// ApplyAll rewrites a list of names, preserving order.
func (r *Renamer) ApplyAll(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = r.Apply(name)
	}
	return out
}

// Pick returns final names for the candidates: same length and order,
// unique across the result and disjoint from forbidden. A colliding
// candidate gets the first free "_<n>" suffix, counting from 1.
func Pick(candidates, forbidden []string) []string {
	taken := make(map[string]struct{}, len(candidates)+len(forbidden))
	for _, name := range forbidden {
		taken[name] = struct{}{}
	}
	out := make([]string, len(candidates))
	for i, name := range candidates {
		final := name
		if _, clash := taken[final]; clash {
			for n := 1; ; n++ {
				final = fmt.Sprintf("%s_%d", name, n)
				if _, clash := taken[final]; !clash {
					break
				}
			}
		}
		out[i] = final
		taken[final] = struct{}{}
	}
	return out
}
