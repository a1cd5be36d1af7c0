package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/graft/pkg/recipes"
	"github.com/aretw0/graft/pkg/registry"
)

// ValidateRecipes loads every recipe document in the source and builds it
// against the registry. It reports all broken documents at once rather than
// stopping at the first, and returns the number of documents checked.
func ValidateRecipes(ctx context.Context, src *recipes.Source, reg *registry.Registry) (int, error) {
	ids, err := src.List(ctx)
	if err != nil {
		return 0, err
	}

	var errors []string
	for _, id := range ids {
		rec, err := src.Load(ctx, id)
		if err != nil {
			errors = append(errors, err.Error())
			continue
		}
		// Building proves the transformer exists and its params decode.
		if _, err := rec.Build(reg); err != nil {
			errors = append(errors, fmt.Sprintf("recipe %q: %v", id, err))
		}
	}

	if len(errors) > 0 {
		return len(ids), fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return len(ids), nil
}
