package vegalite

// Chart is a fluent builder over a Spec, mirroring the way charts are
// assembled against the charting library: construct with data, set a mark,
// add encodings and transforms, then optionally wrap the whole chart in a
// repeat operator.
type Chart struct {
	spec Spec
}

// NewChart starts a chart over inline data values.
func NewChart(values []map[string]interface{}) *Chart {
	return &Chart{
		spec: Spec{
			Schema: SchemaURL,
			Data:   &Data{Values: values},
		},
	}
}

// Mark sets a bare string mark, e.g. "boxplot".
func (c *Chart) Mark(mark string) *Chart {
	c.spec.Mark = mark
	return c
}

// MarkDef sets a mark definition object.
func (c *Chart) MarkDef(def *MarkDef) *Chart {
	c.spec.Mark = def
	return c
}

// EncodeX binds the x channel.
func (c *Chart) EncodeX(def *FieldDef) *Chart {
	c.encoding().X = def
	return c
}

// EncodeY binds the y channel.
func (c *Chart) EncodeY(def *FieldDef) *Chart {
	c.encoding().Y = def
	return c
}

// EncodeColor binds the color channel.
func (c *Chart) EncodeColor(def *FieldDef) *Chart {
	c.encoding().Color = def
	return c
}

// EncodeSize binds the size channel.
func (c *Chart) EncodeSize(def *FieldDef) *Chart {
	c.encoding().Size = def
	return c
}

// EncodeOpacity binds the opacity channel.
func (c *Chart) EncodeOpacity(def *FieldDef) *Chart {
	c.encoding().Opacity = def
	return c
}

// Tooltip binds the tooltip channel to the given field definitions.
func (c *Chart) Tooltip(defs ...FieldDef) *Chart {
	c.encoding().Tooltip = defs
	return c
}

// SwapXY exchanges the x and y channel bindings. Horizontal variants of
// vertical chart kinds are built this way.
func (c *Chart) SwapXY() *Chart {
	enc := c.encoding()
	enc.X, enc.Y = enc.Y, enc.X
	return c
}

// TransformFold appends a fold transform melting the given columns into the
// named (column, value) pair.
func (c *Chart) TransformFold(fold []string, as [2]string) *Chart {
	c.spec.Transform = append(c.spec.Transform, Transform{
		Fold: fold,
		As:   []string{as[0], as[1]},
	})
	return c
}

// Properties sets the chart's width and height.
func (c *Chart) Properties(width, height int) *Chart {
	c.spec.Width = width
	c.spec.Height = height
	return c
}

// Interactive adds an interval selection parameter bound to the scales, so
// a renderer offers pan and zoom.
func (c *Chart) Interactive() *Chart {
	c.spec.Params = append(c.spec.Params, Param{
		Name: "grid",
		Select: &SelectSpec{
			Type:      "interval",
			Encodings: []string{"x", "y"},
		},
		Bind: "scales",
	})
	return c
}

// RepeatGrid wraps the chart in the list form of the repeat operator: the
// sub-chart is instantiated once per field, laid out in the given number of
// grid columns. Data stays at the top level.
func (c *Chart) RepeatGrid(fields []string, columns int) *Chart {
	c.wrapRepeat(fields, columns)
	return c
}

// RepeatMatrix wraps the chart in the row/column form of the repeat
// operator, instantiating the sub-chart for every (row, column) field pair.
func (c *Chart) RepeatMatrix(rows, columns []string) *Chart {
	c.wrapRepeat(&RepeatMapping{Row: rows, Column: columns}, 0)
	return c
}

// wrapRepeat hoists schema and data to a new top level and nests the
// current unit spec underneath the repeat operator.
func (c *Chart) wrapRepeat(repeat interface{}, columns int) {
	inner := c.spec
	inner.Schema = ""
	data := inner.Data
	inner.Data = nil

	c.spec = Spec{
		Schema:  SchemaURL,
		Data:    data,
		Repeat:  repeat,
		Columns: columns,
		Spec:    &inner,
	}
}

// Spec returns the built specification. The chart retains no reference to
// it; callers own the result.
func (c *Chart) Spec() *Spec {
	spec := c.spec
	return &spec
}

// JSON serializes the built specification.
func (c *Chart) JSON() ([]byte, error) {
	return Marshal(&c.spec)
}

// IndentJSON serializes the built specification with indentation, for
// writing specs meant to be read by people.
func (c *Chart) IndentJSON() ([]byte, error) {
	return MarshalIndent(&c.spec)
}

func (c *Chart) encoding() *Encoding {
	if c.spec.Encoding == nil {
		c.spec.Encoding = &Encoding{}
	}
	return c.spec.Encoding
}
