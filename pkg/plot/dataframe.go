package plot

import (
	"github.com/vegaframe/vegaframe/pkg/errors"
	"github.com/vegaframe/vegaframe/pkg/frame"
	"github.com/vegaframe/vegaframe/pkg/vegalite"
)

// framePlotter builds charts for multi-column (Table) data. The first
// column is the default independent axis; the remaining columns are folded
// into color-coded multi-series encodings.
type framePlotter struct {
	// data is the preprocessed [index, columns...] table
	data *frame.Table
}

// newFramePlotter preprocesses the table: an unnamed index gets the column
// name "index" and is attached as the leading column, with composite labels
// flattened to strings. The caller's table is left untouched.
func newFramePlotter(t *frame.Table) (*framePlotter, error) {
	data, err := t.ResetIndex()
	if err != nil {
		return nil, err
	}
	return &framePlotter{data: data}, nil
}

func (p *framePlotter) shape() string { return "dataframe" }

func (p *framePlotter) strategies() map[Kind]strategy {
	return map[Kind]strategy{
		KindLine: func(o Options) (*vegalite.Chart, error) { return p.xy("line", "", false, o) },
		KindArea: func(o Options) (*vegalite.Chart, error) { return p.xy("area", "", false, o) },
		KindBar: func(o Options) (*vegalite.Chart, error) {
			// TODO: bars should be grouped, not stacked.
			return p.xy("bar", vegalite.OrientVertical, false, o)
		},
		KindBarH: func(o Options) (*vegalite.Chart, error) {
			return p.xy("bar", vegalite.OrientHorizontal, true, o)
		},
		KindScatter: p.scatter,
		KindHist:    p.hist,
		KindBox:     p.box,
	}
}

// bindXY resolves the x binding and the dependent column list from the
// options, defaulting to the first column and all remaining columns.
func (p *framePlotter) bindXY(opts Options) (x string, yCols []string, err error) {
	names := p.data.ColumnNames()

	x = opts.X
	if x == "" {
		x = names[0]
	} else if !p.data.HasColumn(x) {
		return "", nil, errors.Newf(errors.ErrorTypeField, "no column named %q for x", x)
	}

	if opts.Y == "" {
		yCols = names[1:]
	} else if !p.data.HasColumn(opts.Y) {
		return "", nil, errors.Newf(errors.ErrorTypeField, "no column named %q for y", opts.Y)
	} else {
		yCols = []string{opts.Y}
	}
	return x, yCols, nil
}

// xy is the shared x/y strategy for line, area, bar and barh: the
// dependent columns are folded into long form and distinguished by a color
// encoding on the folded column field.
func (p *framePlotter) xy(markType, orient string, swap bool, opts Options) (*vegalite.Chart, error) {
	x, yCols, err := p.bindXY(opts)
	if err != nil {
		return nil, err
	}

	def, colorField := markDef(markType, orient, p.data, opts)
	if colorField == nil {
		colorField = vegalite.TypedField(frame.FoldColumnField, vegalite.TypeNominal)
		colorField.Title = vegalite.TitleNone
	}

	y := vegalite.TypedField(frame.FoldValueField, vegalite.TypeQuantitative)
	y.Title = vegalite.TitleNone
	if markType == "area" && opts.Stacked != nil && !*opts.Stacked {
		def.Line = true
		if def.Opacity == nil {
			def.Opacity = Float(0.5)
		}
		y.Stack = vegalite.StackDisabled
	} else if opts.Stacked != nil {
		y.Stack = vegalite.Stack(opts.Stacked)
	}

	tooltip := make([]vegalite.FieldDef, 0, 1+len(yCols))
	tooltip = append(tooltip, *typedField(p.data, x))
	for _, name := range yCols {
		tooltip = append(tooltip, *typedField(p.data, name))
	}

	chart := vegalite.NewChart(p.data.Records()).
		MarkDef(def).
		TransformFold(yCols, [2]string{frame.FoldColumnField, frame.FoldValueField}).
		EncodeX(typedField(p.data, x)).
		EncodeY(y).
		EncodeColor(colorField).
		Tooltip(tooltip...)
	if swap {
		chart.SwapXY()
	}
	return chart.Interactive(), nil
}

// scatter requires explicit x and y bindings and restricts the working
// table to exactly the referenced columns, so the tooltip shows only the
// fields in play.
func (p *framePlotter) scatter(opts Options) (*vegalite.Chart, error) {
	if opts.X == "" || opts.Y == "" {
		return nil, errors.New(errors.ErrorTypeField,
			"scatter requires both 'x' and 'y' field bindings")
	}

	refs := []string{opts.X, opts.Y}
	if opts.C != "" {
		refs = append(refs, opts.C)
	}
	if opts.S != "" {
		refs = append(refs, opts.S)
	}
	cols := dedupe(refs)

	data, err := p.data.Select(cols...)
	if err != nil {
		return nil, err
	}

	def, _ := markDef("point", "", data, opts)

	chart := vegalite.NewChart(data.Records()).
		MarkDef(def).
		EncodeX(typedField(data, opts.X)).
		EncodeY(typedField(data, opts.Y))
	if opts.C != "" {
		chart.EncodeColor(typedField(data, opts.C))
	}
	if opts.S != "" {
		chart.EncodeSize(typedField(data, opts.S))
	}

	tooltip := make([]vegalite.FieldDef, len(cols))
	for i, name := range cols {
		tooltip[i] = *typedField(data, name)
	}
	return chart.Tooltip(tooltip...).Interactive(), nil
}

// hist folds every dependent column into long form and overlays one
// color-coded bar series per original column.
func (p *framePlotter) hist(opts Options) (*vegalite.Chart, error) {
	orient, err := opts.orient()
	if err != nil {
		return nil, err
	}

	names := p.data.ColumnNames()[1:]
	data, err := p.data.Select(names...)
	if err != nil {
		return nil, err
	}

	def, colorField := markDef("bar", orient, data, opts)
	if colorField == nil {
		colorField = vegalite.TypedField(frame.FoldColumnField, vegalite.TypeNominal)
	}

	x := vegalite.TypedField(frame.FoldValueField, vegalite.TypeQuantitative)
	x.Title = vegalite.TitleNone
	x.Bin = opts.bin()
	y := vegalite.Count()
	y.Title = vegalite.Title("Frequency")
	if opts.Stacked == nil {
		y.Stack = vegalite.StackDisabled
	} else {
		y.Stack = vegalite.Stack(opts.Stacked)
	}

	chart := vegalite.NewChart(data.Records()).
		MarkDef(def).
		TransformFold(names, [2]string{frame.FoldColumnField, frame.FoldValueField}).
		EncodeX(x).
		EncodeY(y).
		EncodeColor(colorField)
	if orient == vegalite.OrientHorizontal {
		chart.SwapXY()
	}
	return chart, nil
}

// box folds every dependent column into long form, one box per column.
func (p *framePlotter) box(opts Options) (*vegalite.Chart, error) {
	names := p.data.ColumnNames()[1:]
	data, err := p.data.Select(names...)
	if err != nil {
		return nil, err
	}

	category := vegalite.TypedField(frame.FoldColumnField, vegalite.TypeNominal)
	category.Title = vegalite.TitleNone

	chart := vegalite.NewChart(data.Records()).
		Mark("boxplot").
		TransformFold(names, [2]string{frame.FoldColumnField, frame.FoldValueField}).
		EncodeX(category).
		EncodeY(vegalite.TypedField(frame.FoldValueField, vegalite.TypeQuantitative))
	if !opts.vertical() {
		chart.SwapXY()
	}
	return chart, nil
}
