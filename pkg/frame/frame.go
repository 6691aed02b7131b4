package frame

import (
	"time"

	"github.com/vegaframe/vegaframe/pkg/errors"
)

// ValueKind classifies the values held by a column. It drives chart field
// type inference: numeric columns become quantitative encodings, temporal
// columns become temporal encodings, and everything else is nominal.
type ValueKind int

const (
	// KindString indicates string-valued data
	KindString ValueKind = iota
	// KindNumeric indicates integer or floating point data
	KindNumeric
	// KindTemporal indicates time.Time data
	KindTemporal
	// KindBool indicates boolean data
	KindBool
	// KindMixed indicates a column with values of more than one kind
	KindMixed
)

// Column is a named, ordered sequence of values.
type Column struct {
	// Name is the normalized (string) column label
	Name string
	// Values holds one cell per row
	Values []interface{}
}

// Col builds a Column from an arbitrary label, normalizing the label to its
// string form. Use this when column labels are not already strings, e.g.
// integer or composite labels.
func Col(label interface{}, values ...interface{}) Column {
	return Column{Name: NormalizeLabel(label), Values: values}
}

// Kind classifies the column's values. Nil cells are ignored; a column whose
// non-nil cells span more than one kind is KindMixed.
func (c Column) Kind() ValueKind {
	kind := ValueKind(-1)
	for _, v := range c.Values {
		if v == nil {
			continue
		}
		k := kindOf(v)
		if kind == -1 {
			kind = k
		} else if kind != k {
			return KindMixed
		}
	}
	if kind == -1 {
		return KindString
	}
	return kind
}

func kindOf(v interface{}) ValueKind {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return KindNumeric
	case time.Time:
		return KindTemporal
	case bool:
		return KindBool
	default:
		return KindString
	}
}

// copyValues returns an independent copy of the column's value slice.
func (c Column) copyValues() []interface{} {
	return append([]interface{}(nil), c.Values...)
}

// Table is an ordered sequence of named columns over a shared row index.
// Column names are unique normalized strings; this is validated at
// construction. Tables are immutable: reshaping operations return new
// tables and value slices are shared read-only, never written.
type Table struct {
	cols  []Column
	index Index
}

// NewTable builds a Table from columns and an optional index. A nil index
// defaults to an unnamed 0..n-1 range index. The column slice is copied;
// value slices are shared.
func NewTable(cols []Column, index *Index) (*Table, error) {
	if len(cols) == 0 {
		return nil, errors.New(errors.ErrorTypeData, "table requires at least one column")
	}

	n := len(cols[0].Values)
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if len(c.Values) != n {
			return nil, errors.Newf(errors.ErrorTypeData,
				"column %q has %d rows, want %d", c.Name, len(c.Values), n)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, errors.Newf(errors.ErrorTypeData, "duplicate column name %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	var ix Index
	if index == nil {
		ix = RangeIndex(n)
	} else {
		if index.Len() != n {
			return nil, errors.Newf(errors.ErrorTypeData,
				"index has %d labels, want %d", index.Len(), n)
		}
		ix = *index
	}

	return &Table{
		cols:  append([]Column(nil), cols...),
		index: ix,
	}, nil
}

// MustNewTable is NewTable that panics on error, for fixtures and examples.
func MustNewTable(cols []Column, index *Index) *Table {
	t, err := NewTable(cols, index)
	if err != nil {
		panic(err)
	}
	return t
}

// NumRows returns the row count.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0].Values)
}

// NumColumns returns the column count.
func (t *Table) NumColumns() int {
	return len(t.cols)
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.cols {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// Columns returns a copy of the column slice.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.cols...)
}

// Index returns the table's row index.
func (t *Table) Index() Index {
	return t.index
}

// NumericColumns returns the names of all numeric columns, in table order.
func (t *Table) NumericColumns() []string {
	var names []string
	for _, c := range t.cols {
		if c.Kind() == KindNumeric {
			names = append(names, c.Name)
		}
	}
	return names
}

// Records flattens the table into one map per row, keyed by column name.
// This is the inline-data form embedded in chart descriptions.
func (t *Table) Records() []map[string]interface{} {
	rows := make([]map[string]interface{}, t.NumRows())
	for i := range rows {
		row := make(map[string]interface{}, len(t.cols))
		for _, c := range t.cols {
			row[c.Name] = c.Values[i]
		}
		rows[i] = row
	}
	return rows
}
