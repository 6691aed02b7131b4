package plot

import (
	"time"

	"github.com/vegaframe/vegaframe/pkg/errors"
	"github.com/vegaframe/vegaframe/pkg/frame"
	"github.com/vegaframe/vegaframe/pkg/metrics"
	"github.com/vegaframe/vegaframe/pkg/vegalite"
)

// HistSeries is the histogram entry point for series data. Unlike the
// generic hist kind it defaults to ten bins.
func HistSeries(s *frame.Series, opts Options) (*vegalite.Spec, error) {
	if opts.Bins == nil {
		opts.Bins = Int(10)
	}
	return Plot(s, KindHist, opts)
}

// HistFrame is the grid histogram entry point: one binned histogram panel
// per numeric column, repeated over a grid computed by the layout
// resolver.
func HistFrame(t *frame.Table, opts Options) (*vegalite.Spec, error) {
	start := time.Now()
	spec, err := histFrame(t, opts)
	metrics.ObserveBuild("hist_frame", "dataframe", time.Since(start), err)
	return spec, err
}

func histFrame(t *frame.Table, opts Options) (*vegalite.Spec, error) {
	cols := t.NumericColumns()
	if len(cols) == 0 {
		return nil, errors.New(errors.ErrorTypeData, "no numeric columns to plot")
	}

	layout := DefaultLayout
	if opts.Layout != nil {
		layout = *opts.Layout
	}
	_, gridCols, err := ResolveLayout(len(cols), layout)
	if err != nil {
		return nil, err
	}

	data, err := t.Select(cols...)
	if err != nil {
		return nil, err
	}

	x := vegalite.RepeatedField("repeat")
	x.Type = vegalite.TypeQuantitative
	x.Bin = opts.bin()
	y := vegalite.Count()
	y.Title = vegalite.Title("Frequency")

	def, _ := markDef("bar", "", data, opts)

	chart := vegalite.NewChart(data.Records()).
		MarkDef(def).
		EncodeX(x).
		EncodeY(y).
		RepeatGrid(cols, gridCols)
	return chart.Spec(), nil
}

// BoxplotFrame is the box-plot entry point for table data.
func BoxplotFrame(t *frame.Table, opts Options) (*vegalite.Spec, error) {
	return Plot(t, KindBox, opts)
}
