package transformers

import (
	"fmt"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/ports"
	"github.com/aretw0/graft/pkg/schema"
	"github.com/aretw0/graft/pkg/table"
)

// Center learns the mean of every column at fit time and shifts each cell
// by it at transform time. All columns of the block must be numeric; nil
// cells are ignored when learning and passed through when shifting.
type Center struct {
	means map[string]float64 // nil until fitted
}

// NewCenter creates an unfitted Center.
func NewCenter() *Center {
	return &Center{}
}

// Clone returns a fresh Center without learned state.
func (c *Center) Clone() ports.Transformer {
	return NewCenter()
}

// FitTransform learns the column means and returns the shifted block.
func (c *Center) FitTransform(tbl, y domain.Table) (domain.Table, error) {
	names, err := table.ColumnNames(tbl)
	if err != nil {
		return nil, err
	}
	cols, err := table.Columns(tbl)
	if err != nil {
		return nil, err
	}

	means := make(map[string]float64, len(names))
	for i, name := range names {
		mean, err := columnMean(name, cols[i])
		if err != nil {
			return nil, err
		}
		means[name] = mean
	}
	c.means = means
	return c.apply(tbl, names, cols)
}

// Transform shifts a new block by the learned means.
func (c *Center) Transform(tbl domain.Table) (domain.Table, error) {
	if c.means == nil {
		return nil, domain.ErrNotFitted
	}
	names, err := table.ColumnNames(tbl)
	if err != nil {
		return nil, err
	}
	cols, err := table.Columns(tbl)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if _, ok := c.means[name]; !ok {
			return nil, fmt.Errorf("no learned mean for column %q", name)
		}
	}
	return c.apply(tbl, names, cols)
}

func (c *Center) apply(tbl domain.Table, names []string, cols [][]any) (domain.Table, error) {
	shifted := make([][]any, len(cols))
	for i, col := range cols {
		mean := c.means[names[i]]
		out := make([]any, len(col))
		for r, cell := range col {
			if cell == nil {
				continue
			}
			v, ok := schema.AsFloat(cell)
			if !ok {
				return nil, fmt.Errorf("column %q has non-numeric cell %T", names[i], cell)
			}
			out[r] = v - mean
		}
		shifted[i] = out
	}
	return table.FromColumnsLike(tbl, names, shifted)
}

func columnMean(name string, col []any) (float64, error) {
	sum, n := 0.0, 0
	for _, cell := range col {
		if cell == nil {
			continue
		}
		v, ok := schema.AsFloat(cell)
		if !ok {
			return 0, fmt.Errorf("column %q has non-numeric cell %T", name, cell)
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}
