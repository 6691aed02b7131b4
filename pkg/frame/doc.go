// Package frame provides the tabular data model consumed by the plotting
// backend: ordered named columns over a shared row index, plus the reshaping
// primitives (index attachment, column selection, long-form fold) that the
// chart strategies need.
//
// Tables are treated as immutable once constructed. Every reshaping
// operation returns a new Table and leaves the receiver untouched, so a
// caller can hand the same Table to any number of concurrent plot calls.
package frame
