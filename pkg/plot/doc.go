// Package plot is the plotting backend: it dispatches chart requests over
// tabular data to per-kind strategies and returns declarative Vega-Lite
// chart descriptions.
//
// The entry points mirror what a host plotting system looks up by name:
// Plot for the generic kind dispatch, HistSeries and HistFrame for
// histograms, BoxplotFrame for box plots and ScatterMatrix for
// pairwise scatter grids.
//
// Input is either a *frame.Series or a *frame.Table; the two shapes share
// the same kind vocabulary but differ in default field bindings. A Series
// binds its sole value column to the dependent axis; a Table takes its
// first column as the independent axis and folds the remaining columns
// into color-coded multi-series encodings.
//
// Every call is synchronous, side-effect free and never mutates its input,
// so distinct goroutines may plot the same table concurrently.
package plot
