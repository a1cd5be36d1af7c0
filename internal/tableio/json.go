package tableio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/graft/pkg/adapters/records"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/table"
)

// JSONTable is the wire envelope for a table: a header plus row tuples.
type JSONTable struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ReadJSON decodes a JSONTable envelope into a records frame.
// Numbers arrive as float64, the usual encoding/json behavior.
func ReadJSON(r io.Reader) (*records.Frame, error) {
	var jt JSONTable
	if err := json.NewDecoder(r).Decode(&jt); err != nil {
		return nil, fmt.Errorf("failed to decode table json: %w", err)
	}
	return records.New(jt.Columns, jt.Rows)
}

// WriteJSON encodes any supported table as a JSONTable envelope.
func WriteJSON(w io.Writer, t domain.Table) error {
	jt, err := ToJSONTable(t)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(jt)
}

// ToJSONTable converts any supported table to the wire envelope.
func ToJSONTable(t domain.Table) (*JSONTable, error) {
	names, err := table.ColumnNames(t)
	if err != nil {
		return nil, err
	}
	cols, err := table.Columns(t)
	if err != nil {
		return nil, err
	}
	nrows, err := table.NumRows(t)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, nrows)
	for r := 0; r < nrows; r++ {
		row := make([]any, len(cols))
		for c := range cols {
			row[c] = cols[c][r]
		}
		rows[r] = row
	}
	return &JSONTable{Columns: names, Rows: rows}, nil
}
