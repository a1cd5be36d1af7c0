package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/graft/internal/presentation/graph"
)

// GraphOptions configures RunGraph.
type GraphOptions struct {
	Recipe   RecipeRef
	Sample   string
	LogLevel string
}

// RunGraph fits the recipe's applier on a sample table and prints the
// frozen plan as a Mermaid flowchart, ready to embed in documentation.
func RunGraph(ctx context.Context, opts GraphOptions) error {
	logger, err := NewLogger(opts.LogLevel)
	if err != nil {
		return err
	}

	rec, err := opts.Recipe.Load(ctx)
	if err != nil {
		return err
	}
	app, _, err := fitOnSample(rec, opts.Sample, logger)
	if err != nil {
		return err
	}

	record, err := app.Record()
	if err != nil {
		return err
	}
	fmt.Print(graph.GenerateMermaid(rec.Transformer, record))
	return nil
}
