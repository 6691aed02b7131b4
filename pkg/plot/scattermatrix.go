package plot

import (
	"time"

	"github.com/vegaframe/vegaframe/pkg/errors"
	"github.com/vegaframe/vegaframe/pkg/frame"
	"github.com/vegaframe/vegaframe/pkg/metrics"
	"github.com/vegaframe/vegaframe/pkg/vegalite"
)

// ScatterMatrix builds an N x N grid of pairwise scatter plots over the
// table's numeric columns, diagonal included. The color option is a field
// encoding when it names a column (optionally with a scheme from the
// colormap option) and a literal color otherwise. The tooltip option
// restricts the tooltip fields; by default every column shows.
func ScatterMatrix(t *frame.Table, opts Options) (*vegalite.Spec, error) {
	start := time.Now()
	spec, err := scatterMatrix(t, opts)
	metrics.ObserveBuild("scatter_matrix", "dataframe", time.Since(start), err)
	return spec, err
}

func scatterMatrix(t *frame.Table, opts Options) (*vegalite.Spec, error) {
	cols := t.NumericColumns()
	if len(cols) == 0 {
		return nil, errors.New(errors.ErrorTypeData, "no numeric columns to plot")
	}

	tooltipCols := opts.Tooltip
	if tooltipCols == nil {
		tooltipCols = t.ColumnNames()
	}
	tooltip := make([]vegalite.FieldDef, len(tooltipCols))
	for i, name := range tooltipCols {
		if !t.HasColumn(name) {
			return nil, errors.Newf(errors.ErrorTypeField, "no column named %q for tooltip", name)
		}
		tooltip[i] = *typedField(t, name)
	}

	alpha := 1.0
	if opts.Alpha != nil {
		alpha = *opts.Alpha
	}

	x := vegalite.RepeatedField("column")
	x.Type = vegalite.TypeQuantitative
	y := vegalite.RepeatedField("row")
	y.Type = vegalite.TypeQuantitative

	chart := vegalite.NewChart(t.Records()).
		MarkDef(&vegalite.MarkDef{Type: "circle"}).
		EncodeX(x).
		EncodeY(y).
		EncodeOpacity(vegalite.Value(alpha)).
		Tooltip(tooltip...).
		Properties(150, 150)

	if opts.Color != "" {
		if t.HasColumn(opts.Color) {
			c := typedField(t, opts.Color)
			if opts.Colormap != "" {
				c.Scale = &vegalite.Scale{Scheme: opts.Colormap}
			}
			chart.EncodeColor(c)
		} else {
			chart.EncodeColor(vegalite.Value(opts.Color))
		}
	}

	chart.Interactive().RepeatMatrix(cols, cols)
	return chart.Spec(), nil
}
