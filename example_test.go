package graft_test

import (
	"fmt"
	"log"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/pkg/adapters/columnar"
	"github.com/aretw0/graft/pkg/selectors"
	"github.com/aretw0/graft/pkg/table"
	"github.com/aretw0/graft/pkg/transformers"
)

// ExampleApplier demonstrates the one-shot path: fit a transformer on a
// column subset and graft the result onto the untouched columns.
func ExampleApplier() {
	// 1. Build a table; any supported representation works.
	tbl, err := columnar.New(
		[]string{"city", "temp", "wind"},
		[][]any{
			{"lisbon", "porto"},
			{20.0, 10.0},
			{3.0, 5.0},
		},
	)
	if err != nil {
		log.Fatal(err)
	}

	// 2. Wrap a transformer and scope it to the numeric columns.
	app, err := graft.New(transformers.NewCenter(),
		graft.WithCols(selectors.Cols("temp", "wind")),
		graft.WithRename("centered_{}"),
	)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Fit and transform in one pass.
	out, err := app.FitTransform(tbl, nil)
	if err != nil {
		log.Fatal(err)
	}

	names, _ := table.ColumnNames(out)
	fmt.Println(names)

	centered, _ := out.(*columnar.Frame).Column("centered_temp")
	fmt.Println(centered)
	// Output:
	// [city centered_temp centered_wind]
	// [5 -5]
}

// ExampleApplier_transform demonstrates the train/serve split: the plan
// frozen at fit time replays verbatim on fresh tables.
func ExampleApplier_transform() {
	train, err := columnar.New(
		[]string{"id", "x"},
		[][]any{{"a", "b"}, {1.0, 3.0}},
	)
	if err != nil {
		log.Fatal(err)
	}

	app, err := graft.New(transformers.NewCenter(),
		graft.WithCols(selectors.Cols("x")))
	if err != nil {
		log.Fatal(err)
	}
	if err := app.Fit(train, nil); err != nil {
		log.Fatal(err)
	}

	// Serve-time data is centered with the mean learned from train.
	serve, err := columnar.New(
		[]string{"id", "x"},
		[][]any{{"c"}, {10.0}},
	)
	if err != nil {
		log.Fatal(err)
	}
	out, err := app.Transform(serve)
	if err != nil {
		log.Fatal(err)
	}

	x, _ := out.(*columnar.Frame).Column("x")
	fmt.Println(x)
	// Output:
	// [8]
}

// ExampleApplier_featureNamesOut demonstrates schema introspection after a
// fit: the output column names are frozen and queryable without data.
func ExampleApplier_featureNamesOut() {
	tbl, err := columnar.New(
		[]string{"q1", "q2", "label"},
		[][]any{{1.0, 2.0}, {3.0, 4.0}, {"yes", "no"}},
	)
	if err != nil {
		log.Fatal(err)
	}

	stats, err := transformers.NewRowStats("mean")
	if err != nil {
		log.Fatal(err)
	}
	app, err := graft.New(stats,
		graft.WithCols(selectors.Glob("q*")),
		graft.WithKeepOriginal(true),
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := app.Fit(tbl, nil); err != nil {
		log.Fatal(err)
	}

	names, err := app.FeatureNamesOut()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(names)
	// Output:
	// [q1 q2 label mean]
}
