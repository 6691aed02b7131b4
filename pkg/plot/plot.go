package plot

import (
	"time"

	"go.uber.org/zap"

	"github.com/vegaframe/vegaframe/pkg/errors"
	"github.com/vegaframe/vegaframe/pkg/frame"
	"github.com/vegaframe/vegaframe/pkg/logger"
	"github.com/vegaframe/vegaframe/pkg/metrics"
	"github.com/vegaframe/vegaframe/pkg/vegalite"
)

// strategy builds one chart kind from the shared option vocabulary.
type strategy func(opts Options) (*vegalite.Chart, error)

// plotter is a strategy set scoped to one input shape. The two shapes share
// the kind vocabulary but differ in default field bindings.
type plotter interface {
	shape() string
	strategies() map[Kind]strategy
}

// newPlotter classifies the input shape upfront and returns the matching
// strategy set.
func newPlotter(data interface{}) (plotter, error) {
	switch v := data.(type) {
	case *frame.Series:
		return newSeriesPlotter(v)
	case *frame.Table:
		return newFramePlotter(v)
	default:
		return nil, errors.Newf(errors.ErrorTypeShape, "unsupported data shape %T", data)
	}
}

// Plot builds the chart description for the requested kind. data must be a
// *frame.Series or a *frame.Table; it is never modified.
func Plot(data interface{}, kind Kind, opts Options) (*vegalite.Spec, error) {
	start := time.Now()

	p, err := newPlotter(data)
	if err != nil {
		metrics.ObserveBuild(string(kind), "unknown", time.Since(start), err)
		return nil, err
	}

	strat, ok := p.strategies()[kind]
	if !ok {
		err := errors.Newf(errors.ErrorTypeKind,
			"kind %q is not supported for %s data", kind, p.shape())
		metrics.ObserveBuild(string(kind), p.shape(), time.Since(start), err)
		return nil, err
	}

	chart, err := strat(opts)
	metrics.ObserveBuild(string(kind), p.shape(), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	logger.Get().Debug("built chart",
		zap.String("kind", string(kind)),
		zap.String("shape", p.shape()))
	return chart.Spec(), nil
}

// typedField returns a field reference with its encoding type inferred from
// the column's values.
func typedField(t *frame.Table, name string) *vegalite.FieldDef {
	return vegalite.TypedField(name, fieldTypeOf(t, name))
}

// fieldTypeOf maps a column's value kind to an encoding field type.
func fieldTypeOf(t *frame.Table, name string) string {
	c, ok := t.Column(name)
	if !ok {
		return vegalite.TypeNominal
	}
	switch c.Kind() {
	case frame.KindNumeric:
		return vegalite.TypeQuantitative
	case frame.KindTemporal:
		return vegalite.TypeTemporal
	default:
		return vegalite.TypeNominal
	}
}

// markDef assembles the mark definition for a kind, applying the shared
// mark properties (alpha, literal color). When the color option names a
// column the returned field definition carries the data-driven color
// encoding instead.
func markDef(markType, orient string, t *frame.Table, opts Options) (*vegalite.MarkDef, *vegalite.FieldDef) {
	def := &vegalite.MarkDef{Type: markType, Orient: orient, Opacity: opts.Alpha}

	var colorField *vegalite.FieldDef
	if opts.Color != "" {
		if t.HasColumn(opts.Color) {
			colorField = typedField(t, opts.Color)
		} else {
			def.Color = opts.Color
		}
	}
	return def, colorField
}

// dedupe removes later duplicates, preserving first-use order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
