// Package vegalite models the declarative Vega-Lite chart description that
// the plotting backend emits: a typed spec object graph (marks, encodings,
// transforms, repeat operators, selection params) with a fluent builder on
// top. The package covers the subset of the Vega-Lite grammar the backend
// produces; it does no rendering.
package vegalite

import (
	gojson "github.com/goccy/go-json"
)

// SchemaURL is the Vega-Lite schema the emitted specs conform to.
const SchemaURL = "https://vega.github.io/schema/vega-lite/v5.json"

// Encoding field types.
const (
	TypeQuantitative = "quantitative"
	TypeNominal      = "nominal"
	TypeOrdinal      = "ordinal"
	TypeTemporal     = "temporal"
)

// Mark orientations.
const (
	OrientVertical   = "vertical"
	OrientHorizontal = "horizontal"
)

// Spec is a Vega-Lite specification. A unit spec carries data, mark and
// encoding; a repeat spec carries a repeat operator plus a nested sub-spec.
type Spec struct {
	Schema    string      `json:"$schema,omitempty"`
	Data      *Data       `json:"data,omitempty"`
	Mark      interface{} `json:"mark,omitempty"` // string or *MarkDef
	Encoding  *Encoding   `json:"encoding,omitempty"`
	Transform []Transform `json:"transform,omitempty"`
	Params    []Param     `json:"params,omitempty"`
	Width     int         `json:"width,omitempty"`
	Height    int         `json:"height,omitempty"`
	Repeat    interface{} `json:"repeat,omitempty"` // []string or *RepeatMapping
	Columns   int         `json:"columns,omitempty"`
	Spec      *Spec       `json:"spec,omitempty"`
}

// Data holds inline data values, one map per row.
type Data struct {
	Values []map[string]interface{} `json:"values"`
}

// MarkDef is a mark definition object. Marks with no extra properties may
// instead be written as a bare string in Spec.Mark.
type MarkDef struct {
	Type    string   `json:"type"`
	Orient  string   `json:"orient,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Color   string   `json:"color,omitempty"`
	Line    bool     `json:"line,omitempty"`
}

// Encoding maps visual channels to field or value definitions.
type Encoding struct {
	X       *FieldDef  `json:"x,omitempty"`
	Y       *FieldDef  `json:"y,omitempty"`
	Color   *FieldDef  `json:"color,omitempty"`
	Size    *FieldDef  `json:"size,omitempty"`
	Opacity *FieldDef  `json:"opacity,omitempty"`
	Tooltip []FieldDef `json:"tooltip,omitempty"`
}

// FieldDef is a channel definition: either a field reference with optional
// type, bin, stack, aggregate and scale, or a literal value definition.
type FieldDef struct {
	Field     interface{}       `json:"field,omitempty"` // string or *RepeatRef
	Type      string            `json:"type,omitempty"`
	Title     gojson.RawMessage `json:"title,omitempty"`
	Bin       interface{}       `json:"bin,omitempty"` // true or *BinParams
	Stack     gojson.RawMessage `json:"stack,omitempty"`
	Aggregate string            `json:"aggregate,omitempty"`
	Scale     *Scale            `json:"scale,omitempty"`
	Value     interface{}       `json:"value,omitempty"`
}

// RepeatRef is a field reference resolved by an enclosing repeat operator,
// e.g. {"repeat": "column"}.
type RepeatRef struct {
	Repeat string `json:"repeat"`
}

// BinParams configures binning with an explicit bin count.
type BinParams struct {
	MaxBins int `json:"maxbins"`
}

// Scale configures an encoding scale; only the color scheme is used here.
type Scale struct {
	Scheme string `json:"scheme,omitempty"`
}

// Transform is a data transform. Only the fold transform is emitted: it
// melts the listed columns into a (column, value) pair per row.
type Transform struct {
	Fold []string `json:"fold,omitempty"`
	As   []string `json:"as,omitempty"`
}

// RepeatMapping is the row/column form of the repeat operator used for
// scatter matrices.
type RepeatMapping struct {
	Row    []string `json:"row"`
	Column []string `json:"column"`
}

// Param is a top-level parameter. Interactive charts carry an interval
// selection bound to the scales.
type Param struct {
	Name   string      `json:"name"`
	Select *SelectSpec `json:"select,omitempty"`
	Bind   string      `json:"bind,omitempty"`
}

// SelectSpec configures a selection parameter.
type SelectSpec struct {
	Type      string   `json:"type"`
	Encodings []string `json:"encodings,omitempty"`
}

// Field returns a plain field reference.
func Field(name string) *FieldDef {
	return &FieldDef{Field: name}
}

// TypedField returns a field reference with an explicit encoding type.
func TypedField(name, typ string) *FieldDef {
	return &FieldDef{Field: name, Type: typ}
}

// RepeatedField returns a field reference resolved by a repeat operator.
func RepeatedField(repeat string) *FieldDef {
	return &FieldDef{Field: &RepeatRef{Repeat: repeat}}
}

// Count returns a count aggregate definition with no backing field.
func Count() *FieldDef {
	return &FieldDef{Aggregate: "count", Type: TypeQuantitative}
}

// Value returns a literal value definition.
func Value(v interface{}) *FieldDef {
	return &FieldDef{Value: v}
}

// Stack encodes the three-valued stacking mode: nil leaves the library
// default, otherwise the boolean is emitted verbatim.
func Stack(mode *bool) gojson.RawMessage {
	if mode == nil {
		return nil
	}
	if *mode {
		return gojson.RawMessage("true")
	}
	return gojson.RawMessage("false")
}

// StackDisabled is the explicit stack: null mode that switches a layered
// histogram from stacked to overlapping bars.
var StackDisabled = gojson.RawMessage("null")

// Title encodes an explicit axis or legend title.
func Title(s string) gojson.RawMessage {
	data, _ := gojson.Marshal(s)
	return data
}

// TitleNone is the explicit title: null that suppresses the axis or legend
// title a renderer would otherwise derive from the field name.
var TitleNone = gojson.RawMessage("null")
