package frame

// Series is a single named column plus its row index. For processing it is
// equivalent to a one-column Table; Table converts it.
type Series struct {
	// Name is the series label; empty means unnamed
	Name string
	// Values holds one cell per row
	Values []interface{}
	// Index is the row index; a zero Index means a default range index
	Index Index
}

// NewSeries builds a Series over the given values with a default range
// index.
func NewSeries(name string, values ...interface{}) *Series {
	return &Series{Name: name, Values: values, Index: RangeIndex(len(values))}
}

// WithIndex returns a copy of the series bound to the given index.
func (s *Series) WithIndex(ix Index) *Series {
	return &Series{Name: s.Name, Values: s.Values, Index: ix}
}

// Len returns the number of rows.
func (s *Series) Len() int {
	return len(s.Values)
}

// Table converts the series to a one-column table sharing its values.
// An unnamed series gets the column name "value".
func (s *Series) Table() (*Table, error) {
	name := s.Name
	if name == "" {
		name = "value"
	}
	ix := s.Index
	if ix.Len() == 0 && len(s.Values) > 0 {
		ix = RangeIndex(len(s.Values))
	}
	return NewTable([]Column{{Name: name, Values: s.Values}}, &ix)
}
