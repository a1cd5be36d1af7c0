package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/internal/tableio"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/recipes"
	"github.com/aretw0/graft/pkg/registry"
	"github.com/aretw0/graft/pkg/table"
)

// InspectOptions configures RunInspect.
type InspectOptions struct {
	Recipe   RecipeRef
	Sample   string // CSV path with training-shaped data, "-" for Stdin
	LogLevel string
}

// RunInspect fits the recipe's applier on a sample table and prints the
// frozen plan as a markdown report, without writing any data.
func RunInspect(ctx context.Context, opts InspectOptions) error {
	logger, err := NewLogger(opts.LogLevel)
	if err != nil {
		return err
	}

	rec, err := opts.Recipe.Load(ctx)
	if err != nil {
		return err
	}
	app, tbl, err := fitOnSample(rec, opts.Sample, logger)
	if err != nil {
		return err
	}

	report, err := planReport(rec, app, tbl)
	if err != nil {
		return err
	}
	fmt.Println(Heading(fmt.Sprintf("graft %s", graft.Version)))
	fmt.Print(RenderMarkdown(report))
	return nil
}

// fitOnSample builds the recipe's applier and fits it on the CSV at path.
func fitOnSample(rec *recipes.Recipe, sample string, logger *slog.Logger) (*graft.Applier, domain.Table, error) {
	app, err := rec.Build(registry.Builtin(), graft.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	in, err := openInput(sample)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sample: %w", err)
	}
	defer in.Close()

	tbl, err := tableio.ReadCSV(in)
	if err != nil {
		return nil, nil, err
	}
	if err := app.Fit(tbl, nil); err != nil {
		return nil, nil, err
	}
	return app, tbl, nil
}

// planReport lays out the recipe, the sample schema and the frozen plan
// as markdown.
func planReport(rec *recipes.Recipe, app *graft.Applier, tbl domain.Table) (string, error) {
	record, err := app.Record()
	if err != nil {
		return "", err
	}
	sch, err := table.SchemaOf(tbl)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Recipe %s\n\n", rec.Name)
	fmt.Fprintf(&b, "- **transformer**: %s\n", rec.Transformer)
	fmt.Fprintf(&b, "- **selection**: %s\n", rec.Selector().String())
	fmt.Fprintf(&b, "- **keep original**: %v\n", rec.KeepOriginal)
	if rec.Rename != "" {
		fmt.Fprintf(&b, "- **rename**: `%s`\n", rec.Rename)
	}

	b.WriteString("\n## Sample schema\n\n")
	b.WriteString("| column | kind |\n|---|---|\n")
	for _, c := range sch {
		fmt.Fprintf(&b, "| %s | %s |\n", c.Name, c.Kind.Name())
	}

	b.WriteString("\n## Frozen plan\n\n")
	fmt.Fprintf(&b, "- **inputs**: %s\n", nameList(record.AllInputs))
	fmt.Fprintf(&b, "- **used**: %s\n", nameList(record.UsedInputs))
	fmt.Fprintf(&b, "- **passthrough**: %s\n", nameList(record.PassthroughInputs()))
	fmt.Fprintf(&b, "- **created**: %s\n", nameList(record.CreatedOutputs))
	fmt.Fprintf(&b, "- **outputs**: %s\n", nameList(record.AllOutputs))
	return b.String(), nil
}

func nameList(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
