package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/internal/tableio"
	"github.com/aretw0/graft/pkg/registry"
)

// ApplyOptions configures RunApply.
type ApplyOptions struct {
	Recipe   RecipeRef
	Input    string // CSV path, "-" for Stdin
	Output   string // CSV path, "-" for Stdout
	LogLevel string
}

// RunApply fits the recipe's applier on the input table and writes the
// transformed table: the one-shot batch mode of the tool.
func RunApply(ctx context.Context, opts ApplyOptions) error {
	logger, err := NewLogger(opts.LogLevel)
	if err != nil {
		return err
	}

	rec, err := opts.Recipe.Load(ctx)
	if err != nil {
		return err
	}
	app, err := rec.Build(registry.Builtin(),
		graft.WithLogger(logger),
		graft.WithLifecycleHooks(LogHooks(logger)),
	)
	if err != nil {
		return err
	}

	in, err := openInput(opts.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	tbl, err := tableio.ReadCSV(in)
	if err != nil {
		return err
	}

	out, err := app.FitTransform(tbl, nil)
	if err != nil {
		return err
	}

	w, err := openOutput(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}
	defer w.Close()

	if err := tableio.WriteCSV(w, out); err != nil {
		return err
	}
	logger.Info("Applied recipe", "recipe", rec.Name, "transformer", rec.Transformer)
	return nil
}
