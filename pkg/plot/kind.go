package plot

import (
	"github.com/vegaframe/vegaframe/pkg/errors"
)

// Kind names a chart kind. The set is closed: strategies are looked up in
// a per-shape mapping and unknown kinds are rejected at the lookup, never
// probed reflectively.
type Kind string

const (
	// KindLine is a line chart
	KindLine Kind = "line"
	// KindBar is a vertical bar chart
	KindBar Kind = "bar"
	// KindBarH is a horizontal bar chart
	KindBarH Kind = "barh"
	// KindArea is an area chart
	KindArea Kind = "area"
	// KindScatter is a scatter plot (table shape only)
	KindScatter Kind = "scatter"
	// KindHist is a histogram
	KindHist Kind = "hist"
	// KindBox is a box plot
	KindBox Kind = "box"
)

// Kinds returns every recognized kind name.
func Kinds() []Kind {
	return []Kind{KindLine, KindBar, KindBarH, KindArea, KindScatter, KindHist, KindBox}
}

// ParseKind validates a kind name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", errors.Newf(errors.ErrorTypeKind, "unknown plot kind %q", name)
}
