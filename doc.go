// Package vegaframe turns tabular data into declarative Vega-Lite chart
// specifications: hand it a series or a table, name a chart kind, and get
// back a spec any Vega-Lite renderer can draw. No rendering happens here.
//
// The supported kinds mirror the familiar tabular plotting vocabulary:
// line, bar, barh, area, scatter, hist and box, plus the grid histogram
// and pairwise scatter matrix entry points.
//
// # Quick Start
//
// Build a line chart over a two-column table:
//
//	import (
//	    "github.com/vegaframe/vegaframe/pkg/frame"
//	    "github.com/vegaframe/vegaframe/pkg/plot"
//	    "github.com/vegaframe/vegaframe/pkg/vegalite"
//	)
//
//	tbl := frame.MustNewTable([]frame.Column{
//	    {Name: "x", Values: []interface{}{0, 1, 2, 3}},
//	    {Name: "y", Values: []interface{}{1.0, 4.0, 9.0, 16.0}},
//	}, nil)
//
//	spec, err := plot.Plot(tbl, plot.KindLine, plot.Options{})
//	if err != nil {
//	    // handle error
//	}
//	data, _ := vegalite.MarshalIndent(spec)
//
// # Key Packages
//
//	pkg/frame     - Immutable column-oriented tables, series and reshaping
//	pkg/vegalite  - Typed Vega-Lite spec model and fluent chart builder
//	pkg/plot      - Chart kind dispatch and the plotting entry points
//	pkg/errors    - Structured errors with a shape/kind/field/option taxonomy
//	pkg/logger    - Structured logging built on zap
//	pkg/metrics   - Prometheus collectors for chart builds
//	pkg/config    - YAML defaults for the CLI
//
// The vegaframe CLI under cmd/vegaframe reads CSV input and writes spec
// JSON, optionally gzipped.
package vegaframe
