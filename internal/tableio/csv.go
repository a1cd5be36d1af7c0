// Package tableio reads and writes tables at the process boundary.
//
// CSV maps to the columnar representation (header row + typed cells
// recovered by parsing), JSON to the records representation (a
// columns/rows envelope). The CLI and the HTTP adapter are the only
// consumers; library code never touches serialized tables.
package tableio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/graft/pkg/adapters/columnar"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/table"
)

// ReadCSV parses CSV with a header row into a columnar frame.
// Cells are recovered as int, float, bool, RFC 3339 time or string;
// empty cells become nil.
func ReadCSV(r io.Reader) (*columnar.Frame, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv input has no header row")
	}

	header := rows[0]
	cols := make([][]any, len(header))
	for i := range cols {
		cols[i] = make([]any, 0, len(rows)-1)
	}
	for _, row := range rows[1:] {
		for i, cell := range row {
			cols[i] = append(cols[i], parseCell(cell))
		}
	}
	return columnar.New(header, cols)
}

// parseCell recovers a typed value from its CSV text. Parse order
// matters: "1" must stay an int, so bools match "true"/"false" only.
func parseCell(s string) any {
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	if v, err := time.Parse(time.RFC3339, s); err == nil {
		return v
	}
	return s
}

// WriteCSV writes any supported table as CSV with a header row.
// Nil cells become empty fields; times use RFC 3339.
func WriteCSV(w io.Writer, t domain.Table) error {
	names, err := table.ColumnNames(t)
	if err != nil {
		return err
	}
	cols, err := table.Columns(t)
	if err != nil {
		return err
	}
	nrows, err := table.NumRows(t)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(names); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	row := make([]string, len(cols))
	for r := 0; r < nrows; r++ {
		for c := range cols {
			row[c] = formatCell(cols[c][r])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", r, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
