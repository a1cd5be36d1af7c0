package transformers

import (
	"fmt"
	"slices"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/ports"
	"github.com/aretw0/graft/pkg/schema"
	"github.com/aretw0/graft/pkg/table"
)

// knownStats lists the supported aggregates, in output order.
var knownStats = []string{"mean", "sum", "min", "max"}

// RowStats computes per-row aggregates across the whole block: one output
// column per configured statistic. It is stateless, so fitting equals
// transforming. Nil cells are ignored; a row with no numeric cells yields
// nil aggregates.
type RowStats struct {
	stats []string
}

// NewRowStats creates a RowStats computing the given statistics, in the
// given order. With no arguments it computes mean, sum, min and max.
func NewRowStats(stats ...string) (*RowStats, error) {
	if len(stats) == 0 {
		stats = slices.Clone(knownStats)
	}
	for _, s := range stats {
		if !slices.Contains(knownStats, s) {
			return nil, fmt.Errorf("unknown statistic %q (supported: %v)", s, knownStats)
		}
	}
	return &RowStats{stats: slices.Clone(stats)}, nil
}

// Clone returns a RowStats with the same configuration.
func (r *RowStats) Clone() ports.Transformer {
	return &RowStats{stats: slices.Clone(r.stats)}
}

// FitTransform computes the aggregates. RowStats learns nothing.
func (r *RowStats) FitTransform(tbl, y domain.Table) (domain.Table, error) {
	return r.Transform(tbl)
}

// Transform computes one output column per configured statistic.
func (r *RowStats) Transform(tbl domain.Table) (domain.Table, error) {
	names, err := table.ColumnNames(tbl)
	if err != nil {
		return nil, err
	}
	cols, err := table.Columns(tbl)
	if err != nil {
		return nil, err
	}
	nrows, err := table.NumRows(tbl)
	if err != nil {
		return nil, err
	}

	out := make([][]any, len(r.stats))
	for i := range out {
		out[i] = make([]any, nrows)
	}
	for row := 0; row < nrows; row++ {
		var cells []float64
		for i, col := range cols {
			cell := col[row]
			if cell == nil {
				continue
			}
			v, ok := schema.AsFloat(cell)
			if !ok {
				return nil, fmt.Errorf("column %q has non-numeric cell %T", names[i], cell)
			}
			cells = append(cells, v)
		}
		for i, stat := range r.stats {
			out[i][row] = aggregate(stat, cells)
		}
	}
	return table.FromColumnsLike(tbl, slices.Clone(r.stats), out)
}

func aggregate(stat string, cells []float64) any {
	if len(cells) == 0 {
		return nil
	}
	switch stat {
	case "mean":
		sum := 0.0
		for _, v := range cells {
			sum += v
		}
		return sum / float64(len(cells))
	case "sum":
		sum := 0.0
		for _, v := range cells {
			sum += v
		}
		return sum
	case "min":
		return slices.Min(cells)
	case "max":
		return slices.Max(cells)
	default:
		return nil
	}
}
