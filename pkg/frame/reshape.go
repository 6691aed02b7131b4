package frame

import (
	"github.com/vegaframe/vegaframe/pkg/errors"
)

// Long-form fold column names. Folding melts N value columns into a
// "column" column naming the source column and a "value" column holding
// the cell.
const (
	FoldColumnField = "column"
	FoldValueField  = "value"
)

// ResetIndex returns a new table with the row index attached as the leading
// column. An unnamed index becomes a column named "index". Composite index
// labels are rendered to their string form; the chart encoding model admits
// only flat scalar fields per row, so multi-level structure is never
// preserved.
func (t *Table) ResetIndex() (*Table, error) {
	name := t.index.Name
	if name == "" {
		name = "index"
	}

	var labels []interface{}
	if t.index.IsComposite() {
		labels = make([]interface{}, t.index.Len())
		for i, l := range t.index.Labels {
			labels[i] = NormalizeLabel(l)
		}
	} else {
		labels = t.index.copyLabels()
	}

	cols := make([]Column, 0, len(t.cols)+1)
	cols = append(cols, Column{Name: name, Values: labels})
	cols = append(cols, t.cols...)

	ix := RangeIndex(t.NumRows())
	return NewTable(cols, &ix)
}

// Select returns a new table restricted to the named columns, in the given
// order, sharing the original index. Unknown names fail with a field error.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		c, ok := t.Column(name)
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeField, "no column named %q", name)
		}
		cols = append(cols, c)
	}
	ix := t.index
	return NewTable(cols, &ix)
}

// Reshape applies the standard pre-plot shaping in one step: restrict to a
// column subset when one is given, then attach the index as a leading
// column when withIndex is set. The receiver is never modified.
func (t *Table) Reshape(withIndex bool, columns []string) (*Table, error) {
	out := t
	if columns != nil {
		sel, err := t.Select(columns...)
		if err != nil {
			return nil, err
		}
		out = sel
	}
	if withIndex {
		return out.ResetIndex()
	}
	if out == t {
		// Callers own the result; hand back a shallow copy rather than
		// the receiver itself.
		cp := *t
		out = &cp
	}
	return out, nil
}

// Fold melts the named value columns into long form: every original row
// becomes one row per folded column, tagged by a "column" column holding
// the source column name and a "value" column holding the cell. All other
// columns are replicated across the folded rows. Row order is original row
// order, with folded rows emitted in valueColumns order within each
// original row.
func Fold(t *Table, valueColumns []string) (*Table, error) {
	if len(valueColumns) == 0 {
		return nil, errors.New(errors.ErrorTypeField, "fold requires at least one value column")
	}

	folded := make(map[string]Column, len(valueColumns))
	for _, name := range valueColumns {
		c, ok := t.Column(name)
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeField, "no column named %q", name)
		}
		folded[name] = c
	}

	n := t.NumRows()
	k := len(valueColumns)

	var keep []Column
	for _, c := range t.cols {
		if _, isFolded := folded[c.Name]; isFolded {
			continue
		}
		out := Column{Name: c.Name, Values: make([]interface{}, 0, n*k)}
		for i := 0; i < n; i++ {
			for j := 0; j < k; j++ {
				out.Values = append(out.Values, c.Values[i])
			}
		}
		keep = append(keep, out)
	}

	colTags := make([]interface{}, 0, n*k)
	values := make([]interface{}, 0, n*k)
	for i := 0; i < n; i++ {
		for _, name := range valueColumns {
			colTags = append(colTags, name)
			values = append(values, folded[name].Values[i])
		}
	}

	cols := append(keep,
		Column{Name: FoldColumnField, Values: colTags},
		Column{Name: FoldValueField, Values: values},
	)
	ix := RangeIndex(n * k)
	return NewTable(cols, &ix)
}
