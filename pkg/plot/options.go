package plot

import (
	"github.com/vegaframe/vegaframe/pkg/errors"
	"github.com/vegaframe/vegaframe/pkg/vegalite"
)

// Options is the recognized option vocabulary shared by all chart kinds.
// Zero values mean "not given"; pointer fields distinguish an explicit
// false or zero from absence. Options not meaningful for a kind are
// ignored, matching the open keyword-set contract of the host plotting
// system.
type Options struct {
	// X and Y are explicit field bindings. They default to the first
	// column and the remaining columns respectively.
	X string
	Y string

	// C and S bind color and size fields; scatter only.
	C string
	S string

	// Alpha is the mark opacity in [0, 1].
	Alpha *float64

	// Color is a literal mark color, or a data-driven color encoding when
	// it names a column.
	Color string

	// Bins fixes the histogram bin count; nil means automatic binning.
	Bins *int

	// Orientation is "vertical" or "horizontal" for histograms.
	Orientation string

	// Stacked selects the value axis stacking mode; nil leaves the kind's
	// default.
	Stacked *bool

	// Vert places the box plot category axis on x when true (the
	// default); false swaps the axes.
	Vert *bool

	// Layout is the grid histogram panel layout; negative dimensions are
	// inferred.
	Layout *Layout

	// Tooltip restricts the scatter matrix tooltip to these fields;
	// nil shows all columns.
	Tooltip []string

	// Colormap names the color scheme for a data-driven scatter matrix
	// color encoding.
	Colormap string
}

// Float returns a pointer to v, for setting optional float options.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for setting optional integer options.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for setting optional boolean options.
func Bool(v bool) *bool { return &v }

// orient validates the orientation option and resolves its default.
func (o Options) orient() (string, error) {
	switch o.Orientation {
	case "":
		return vegalite.OrientVertical, nil
	case vegalite.OrientVertical, vegalite.OrientHorizontal:
		return o.Orientation, nil
	default:
		return "", errors.Newf(errors.ErrorTypeOption,
			"orientation must be %q or %q, got %q",
			vegalite.OrientVertical, vegalite.OrientHorizontal, o.Orientation)
	}
}

// bin resolves the bins option to a bin encoding setting.
func (o Options) bin() interface{} {
	if o.Bins == nil {
		return true
	}
	return &vegalite.BinParams{MaxBins: *o.Bins}
}

// vertical resolves the box plot vert option, defaulting to true.
func (o Options) vertical() bool {
	return o.Vert == nil || *o.Vert
}
