package plot

import (
	"github.com/vegaframe/vegaframe/pkg/errors"
)

// Layout is a panel grid shape. A negative dimension is a sentinel meaning
// "infer from the panel count".
type Layout struct {
	Rows int
	Cols int
}

// DefaultLayout infers the row count for a two-column grid.
var DefaultLayout = Layout{Rows: -1, Cols: 2}

// ResolveLayout computes the concrete grid shape for panels charts. At most
// one dimension may be negative; it is inferred as the ceiling of
// panels over the other dimension. A fully specified grid must be large
// enough to hold every panel.
func ResolveLayout(panels int, layout Layout) (rows, cols int, err error) {
	rows, cols = layout.Rows, layout.Cols

	switch {
	case rows < 0 && cols < 0:
		return 0, 0, errors.New(errors.ErrorTypeConfig,
			"layout must specify at least one dimension")
	case rows < 0:
		if cols == 0 {
			return 0, 0, errors.New(errors.ErrorTypeConfig, "layout columns must be positive")
		}
		rows = ceilDiv(panels, cols)
	case cols < 0:
		if rows == 0 {
			return 0, 0, errors.New(errors.ErrorTypeConfig, "layout rows must be positive")
		}
		cols = ceilDiv(panels, rows)
	default:
		if rows*cols < panels {
			return 0, 0, errors.Newf(errors.ErrorTypeConfig,
				"layout %dx%d cannot hold %d panels", rows, cols, panels)
		}
	}

	return rows, cols, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
