// Package recipes parses declarative applier configuration.
//
// A recipe names a registered transformer, its parameters and the applier
// options, either as a plain YAML document or as the frontmatter of a loam
// markdown document (see Source). Build turns a recipe into a ready
// Applier using a transformer registry.
package recipes

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/pkg/registry"
	"github.com/aretw0/graft/pkg/selectors"
)

// Recipe is the declarative form of an applier configuration.
// At most one of Cols, Glob and Regex may be set; none means all columns.
type Recipe struct {
	Name         string         `yaml:"name" mapstructure:"name"`
	Transformer  string         `yaml:"transformer" mapstructure:"transformer"`
	Params       map[string]any `yaml:"params" mapstructure:"params"`
	Cols         []string       `yaml:"cols" mapstructure:"cols"`
	Glob         string         `yaml:"glob" mapstructure:"glob"`
	Regex        string         `yaml:"regex" mapstructure:"regex"`
	KeepOriginal bool           `yaml:"keep_original" mapstructure:"keep_original"`
	Rename       string         `yaml:"rename" mapstructure:"rename"`
}

// Parse decodes and validates a YAML recipe.
func Parse(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the recipe's internal consistency.
func (r *Recipe) Validate() error {
	if r.Transformer == "" {
		return fmt.Errorf("recipe is missing a transformer name")
	}
	selections := 0
	if len(r.Cols) > 0 {
		selections++
	}
	if r.Glob != "" {
		selections++
	}
	if r.Regex != "" {
		selections++
	}
	if selections > 1 {
		return fmt.Errorf("recipe sets more than one of cols, glob and regex")
	}
	return nil
}

// Selector returns the column selection the recipe describes.
func (r *Recipe) Selector() selectors.Selector {
	switch {
	case len(r.Cols) > 0:
		return selectors.Cols(r.Cols...)
	case r.Glob != "":
		return selectors.Glob(r.Glob)
	case r.Regex != "":
		return selectors.Regex(r.Regex)
	}
	return selectors.All()
}

// Build resolves the transformer through the registry and constructs the
// configured applier. Extra options (logger, hooks) apply on top of the
// recipe's own.
func (r *Recipe) Build(reg *registry.Registry, extra ...graft.Option) (*graft.Applier, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	tmpl, err := reg.Build(r.Transformer, r.Params)
	if err != nil {
		return nil, err
	}

	opts := []graft.Option{
		graft.WithCols(r.Selector()),
		graft.WithKeepOriginal(r.KeepOriginal),
	}
	if r.Rename != "" {
		opts = append(opts, graft.WithRename(r.Rename))
	}
	opts = append(opts, extra...)
	return graft.New(tmpl, opts...)
}
