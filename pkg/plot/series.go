package plot

import (
	"github.com/vegaframe/vegaframe/pkg/frame"
	"github.com/vegaframe/vegaframe/pkg/vegalite"
)

// seriesPlotter builds charts for one-column (Series) data. The sole value
// column is bound to the dependent axis automatically.
type seriesPlotter struct {
	// data is the preprocessed [index, value] table
	data     *frame.Table
	indexCol string
	valueCol string
}

// newSeriesPlotter preprocesses the series: an unnamed series gets the
// value column name "value", an unnamed index the column name "index", and
// the index is attached as the leading column. Composite index labels are
// flattened to strings. The caller's series is left untouched.
func newSeriesPlotter(s *frame.Series) (*seriesPlotter, error) {
	t, err := s.Table()
	if err != nil {
		return nil, err
	}
	t, err = t.ResetIndex()
	if err != nil {
		return nil, err
	}
	names := t.ColumnNames()
	return &seriesPlotter{data: t, indexCol: names[0], valueCol: names[1]}, nil
}

func (p *seriesPlotter) shape() string { return "series" }

func (p *seriesPlotter) strategies() map[Kind]strategy {
	return map[Kind]strategy{
		KindLine: func(o Options) (*vegalite.Chart, error) { return p.xy("line", "", false, o) },
		KindArea: func(o Options) (*vegalite.Chart, error) { return p.xy("area", "", false, o) },
		KindBar: func(o Options) (*vegalite.Chart, error) {
			return p.xy("bar", vegalite.OrientVertical, false, o)
		},
		KindBarH: func(o Options) (*vegalite.Chart, error) {
			return p.xy("bar", vegalite.OrientHorizontal, true, o)
		},
		KindHist: p.hist,
		KindBox:  p.box,
	}
}

// xy is the shared x/y strategy for line, area, bar and barh: index on the
// independent axis, the value column on the dependent axis. swap exchanges
// the axes after construction for horizontal variants.
func (p *seriesPlotter) xy(markType, orient string, swap bool, opts Options) (*vegalite.Chart, error) {
	def, colorField := markDef(markType, orient, p.data, opts)

	x := typedField(p.data, p.indexCol)
	x.Title = vegalite.TitleNone
	y := typedField(p.data, p.valueCol)
	y.Title = vegalite.TitleNone

	chart := vegalite.NewChart(p.data.Records()).
		MarkDef(def).
		EncodeX(x).
		EncodeY(y).
		Tooltip(*typedField(p.data, p.indexCol), *typedField(p.data, p.valueCol))
	if colorField != nil {
		chart.EncodeColor(colorField)
	}
	if swap {
		chart.SwapXY()
	}
	return chart.Interactive(), nil
}

// hist bins the value column and counts per bin. Orientation swaps which
// axis is binned.
func (p *seriesPlotter) hist(opts Options) (*vegalite.Chart, error) {
	orient, err := opts.orient()
	if err != nil {
		return nil, err
	}

	data, err := p.data.Select(p.valueCol)
	if err != nil {
		return nil, err
	}

	def, colorField := markDef("bar", orient, data, opts)

	x := typedField(data, p.valueCol)
	x.Title = vegalite.TitleNone
	x.Bin = opts.bin()
	y := vegalite.Count()
	y.Title = vegalite.Title("Frequency")

	chart := vegalite.NewChart(data.Records()).
		MarkDef(def).
		EncodeX(x).
		EncodeY(y)
	if colorField != nil {
		chart.EncodeColor(colorField)
	}
	if orient == vegalite.OrientHorizontal {
		chart.SwapXY()
	}
	return chart, nil
}

// box folds the value column into long form and draws one box.
func (p *seriesPlotter) box(opts Options) (*vegalite.Chart, error) {
	data, err := p.data.Select(p.valueCol)
	if err != nil {
		return nil, err
	}

	category := vegalite.TypedField(frame.FoldColumnField, vegalite.TypeNominal)
	category.Title = vegalite.TitleNone

	chart := vegalite.NewChart(data.Records()).
		Mark("boxplot").
		TransformFold([]string{p.valueCol}, [2]string{frame.FoldColumnField, frame.FoldValueField}).
		EncodeX(category).
		EncodeY(vegalite.TypedField(frame.FoldValueField, vegalite.TypeQuantitative))
	if !opts.vertical() {
		chart.SwapXY()
	}
	return chart, nil
}
