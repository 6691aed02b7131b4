package frame

// Index is the row index of a Table or Series: an ordered sequence of
// labels, one per row. Composite (multi-level) indexes store each row's
// label as a Tuple.
type Index struct {
	// Name identifies the index; empty means unnamed
	Name string
	// Labels holds one label per row
	Labels []interface{}
}

// RangeIndex returns an unnamed integer index 0..n-1, the default when a
// table is built without an explicit index.
func RangeIndex(n int) Index {
	labels := make([]interface{}, n)
	for i := range labels {
		labels[i] = i
	}
	return Index{Labels: labels}
}

// NewIndex returns a named index over the given labels.
func NewIndex(name string, labels []interface{}) Index {
	return Index{Name: name, Labels: labels}
}

// MultiIndex builds a composite index from per-row level values. Each row's
// label becomes a Tuple of its level values.
func MultiIndex(name string, rows [][]interface{}) Index {
	labels := make([]interface{}, len(rows))
	for i, row := range rows {
		labels[i] = Tuple(append([]interface{}(nil), row...))
	}
	return Index{Name: name, Labels: labels}
}

// Len returns the number of rows covered by the index.
func (ix Index) Len() int {
	return len(ix.Labels)
}

// IsComposite reports whether the index carries multi-level Tuple labels.
func (ix Index) IsComposite() bool {
	for _, l := range ix.Labels {
		if _, ok := l.(Tuple); ok {
			return true
		}
	}
	return false
}

// copyLabels returns an independent copy of the label slice.
func (ix Index) copyLabels() []interface{} {
	return append([]interface{}(nil), ix.Labels...)
}
