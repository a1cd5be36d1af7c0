package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/graft/pkg/recipes"
)

// RecipeRef points at a recipe: either a YAML file, or a document id
// inside a loam directory.
type RecipeRef struct {
	File string // path to a YAML recipe
	Dir  string // path to a loam repository
	Name string // document id inside Dir
}

// Load resolves the reference to a parsed recipe.
func (r RecipeRef) Load(ctx context.Context) (*recipes.Recipe, error) {
	switch {
	case r.File != "" && r.Dir != "":
		return nil, fmt.Errorf("use either a recipe file or a recipe directory, not both")
	case r.File != "":
		data, err := os.ReadFile(r.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read recipe: %w", err)
		}
		rec, err := recipes.Parse(data)
		if err != nil {
			return nil, err
		}
		if rec.Name == "" {
			rec.Name = r.File
		}
		return rec, nil
	case r.Dir != "":
		if r.Name == "" {
			return nil, fmt.Errorf("a recipe directory needs --name to pick a document")
		}
		src, err := recipes.Open(r.Dir)
		if err != nil {
			return nil, err
		}
		return src.Load(ctx, r.Name)
	}
	return nil, fmt.Errorf("no recipe given: use --recipe or --recipes-dir with --name")
}
