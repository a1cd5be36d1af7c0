// Package registry maps transformer names to factories, so recipes and
// servers can build appliers from declarative configuration.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/graft/pkg/ports"
	"github.com/aretw0/graft/pkg/transformers"
)

// Factory builds a transformer template from declarative parameters.
// It receives the raw parameter map and returns a template or an error.
type Factory func(params map[string]any) (ports.Transformer, error)

// Registry manages the available transformer factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Builtin returns a registry preloaded with the built-in transformers:
// "identity", "center" and "row_stats".
func Builtin() *Registry {
	r := NewRegistry()
	r.Register("identity", func(params map[string]any) (ports.Transformer, error) {
		return transformers.NewIdentity(), nil
	})
	r.Register("center", func(params map[string]any) (ports.Transformer, error) {
		return transformers.NewCenter(), nil
	})
	r.Register("row_stats", buildRowStats)
	return r
}

func buildRowStats(params map[string]any) (ports.Transformer, error) {
	var p struct {
		Stats []string `mapstructure:"stats"`
	}
	if err := mapstructure.Decode(params, &p); err != nil {
		return nil, fmt.Errorf("failed to decode row_stats params: %w", err)
	}
	return transformers.NewRowStats(p.Stats...)
}

// Register adds a factory to the registry.
// If a factory with the same name exists, it is overwritten.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Build looks up a factory by name and builds a transformer template.
// Returns an error if the name is not registered.
func (r *Registry) Build(name string, params map[string]any) (ports.Transformer, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("transformer not found: %s", name)
	}
	return factory(params)
}

// Names returns the registered transformer names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
