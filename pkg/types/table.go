// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for recsys-data.
// A Table is the in-memory result of loading one CSV dataset; the config
// structs carry the settings the CLI reads through viper.
package types

// ColumnType is the inferred type of a table column.
type ColumnType string

const (
	TypeInt64   ColumnType = "int64"
	TypeFloat64 ColumnType = "float64"
	TypeBool    ColumnType = "bool"
	TypeString  ColumnType = "string"
)

// Column is a named, typed sequence of values. A nil entry in Values is a
// null cell. Non-nil entries hold int64, float64, bool or string according
// to Type.
type Column struct {
	Name   string     `json:"name" yaml:"name"`
	Type   ColumnType `json:"type" yaml:"type"`
	Values []any      `json:"-" yaml:"-"`
}

// NullCount returns the number of null cells in the column.
func (c Column) NullCount() int {
	n := 0
	for _, v := range c.Values {
		if v == nil {
			n++
		}
	}
	return n
}

// Table is an ordered set of equal-length columns. Column order is the
// header order of the source CSV.
type Table struct {
	Columns []Column `json:"columns" yaml:"columns"`
}

// Height returns the number of rows.
func (t *Table) Height() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Width returns the number of columns.
func (t *Table) Width() int {
	if t == nil {
		return 0
	}
	return len(t.Columns)
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, t.Width())
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Row returns the values of row i in column order. It panics if i is out
// of range, like a slice index.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.Columns))
	for j, c := range t.Columns {
		row[j] = c.Values[i]
	}
	return row
}

// Slice returns a table sharing storage with t that holds at most n rows
// starting at offset. Out-of-range bounds are clamped.
func (t *Table) Slice(offset, n int) *Table {
	h := t.Height()
	if offset < 0 {
		offset = 0
	}
	if offset > h {
		offset = h
	}
	end := offset + n
	if n < 0 || end > h {
		end = h
	}

	out := &Table{Columns: make([]Column, len(t.Columns))}
	for i, c := range t.Columns {
		out.Columns[i] = Column{Name: c.Name, Type: c.Type, Values: c.Values[offset:end]}
	}
	return out
}
