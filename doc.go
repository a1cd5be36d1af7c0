/*
Package graft applies a transformation to a chosen subset of a table's
columns, as one joint block, and deterministically grafts the result back
onto the untouched columns.

It is a building block for tabular preprocessing pipelines: pick columns,
hand them to any transformation strategy, and get back a table with a
stable schema where passthrough columns keep their place and generated
columns get collision-free names.

# Concept

Graft splits every table into a transformed block and a passthrough block.
At fit time the column selection is resolved against the concrete table,
a fresh clone of the wrapped transformer is fitted on the selected block,
and the output names are reconciled against the passthrough names. All of
that is frozen as a FitRecord; transform replays the frozen plan on new
tables without re-deriving it, mirroring a train/serve lifecycle.

Two table representations ship with the library (column-major frames with
row-index labels, and row-major record frames); the core is written
against a small Backend port and does not care which one is in use.

# Key Features

  - Joint application: the selected columns reach the transformer as one
    block, not column by column.
  - Frozen plans: selection and naming are resolved once, at fit time,
    and replayed verbatim at transform time.
  - Deterministic naming: rename templates plus stable collision suffixes
    keep output schemas reproducible across refits.
  - Hexagonal Architecture: core logic is decoupled from the concrete
    tabular representation behind a Backend port.

# Usage

Wrap any ports.Transformer in an Applier, fit it on a table, and reuse
the frozen plan:

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/graft"
		"github.com/aretw0/graft/pkg/adapters/columnar"
		"github.com/aretw0/graft/pkg/selectors"
		"github.com/aretw0/graft/pkg/transformers"
	)

	func main() {
		tbl, err := columnar.New(
			[]string{"city", "temp", "wind"},
			[][]any{{"lisbon", "porto"}, {21.5, 18.0}, {12.0, 30.5}},
		)
		if err != nil {
			log.Fatal(err)
		}

		app, err := graft.New(
			transformers.NewCenter(),
			graft.WithCols(selectors.Cols("temp", "wind")),
			graft.WithRename("centered_{}"),
		)
		if err != nil {
			log.Fatal(err)
		}

		out, err := app.FitTransform(tbl, nil)
		if err != nil {
			log.Fatal(err)
		}

		names, _ := app.FeatureNamesOut()
		fmt.Println(names) // [city centered_temp centered_wind]
		_ = out
	}
*/
package graft
