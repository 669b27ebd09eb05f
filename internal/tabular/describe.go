package tabular

import "github.com/pdiddy/recsys-data/pkg/types"

// ColumnSummary describes one column of a loaded table.
type ColumnSummary struct {
	Name  string           `json:"name" yaml:"name"`
	Type  types.ColumnType `json:"type" yaml:"type"`
	Nulls int              `json:"nulls" yaml:"nulls"`
}

// Summary describes the shape and schema of a table.
type Summary struct {
	Rows    int             `json:"rows" yaml:"rows"`
	Columns []ColumnSummary `json:"columns" yaml:"columns"`
}

// Describe returns the row count and per-column schema of t.
func Describe(t *types.Table) Summary {
	s := Summary{
		Rows:    t.Height(),
		Columns: make([]ColumnSummary, t.Width()),
	}
	for i, c := range t.Columns {
		s.Columns[i] = ColumnSummary{Name: c.Name, Type: c.Type, Nulls: c.NullCount()}
	}
	return s
}
