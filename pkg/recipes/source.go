package recipes

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
)

// Source loads recipes from a loam repository. Each document carries the
// recipe as YAML frontmatter; the markdown body is free-form documentation
// of what the applier is for.
type Source struct {
	repo *loam.TypedRepository[Recipe]
}

// NewSource wraps an already initialized loam repository.
func NewSource(repo core.Repository) *Source {
	return &Source{repo: loam.NewTypedRepository[Recipe](repo)}
}

// Open initializes a loam repository at path and wraps it as a Source.
func Open(path string) (*Source, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	// Strict mode keeps frontmatter numerics as json.Number; read-only
	// because a source never writes documents.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return NewSource(repo), nil
}

// Load retrieves and validates the recipe stored under id. An unset
// recipe name defaults to the requested id.
func (s *Source) Load(ctx context.Context, id string) (*Recipe, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("recipe %q not found: %w", id, err)
	}
	rec := doc.Data
	if rec.Name == "" {
		rec.Name = id
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("recipe %q: %w", id, err)
	}
	return &rec, nil
}

// List returns the id of every recipe document in the repository, sorted.
// Two documents declaring the same recipe name is an authoring error and
// fails the listing.
func (s *Source) List(ctx context.Context) ([]string, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		name := doc.Data.Name
		if name == "" {
			name = trimExtension(doc.ID)
		}
		if existing, ok := seen[name]; ok {
			return nil, fmt.Errorf("recipe name %q is declared in both %q and %q", name, existing, doc.ID)
		}
		seen[name] = doc.ID
		ids = append(ids, trimExtension(doc.ID))
	}
	slices.Sort(ids)
	return ids, nil
}

// trimExtension maps document ids like "center-sensors.md" to the id a
// caller would pass to Load.
func trimExtension(id string) string {
	if ext := filepath.Ext(id); ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
