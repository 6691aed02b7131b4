package frame

import (
	"fmt"
	"strings"
)

// Tuple is a composite label, such as a single value of a multi-level row
// index. It renders to the textual tuple form, e.g. ('a', 1).
type Tuple []interface{}

// String renders the tuple with string elements quoted and everything else
// in its natural form.
func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		if s, ok := v.(string); ok {
			parts[i] = "'" + s + "'"
		} else {
			parts[i] = fmt.Sprintf("%v", v)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// NormalizeLabel coerces an arbitrary column or index label to its string
// form. Chart field references are plain strings, so every label must pass
// through here before it is used as a field name. The function is total and
// idempotent: strings map to themselves.
func NormalizeLabel(label interface{}) string {
	switch v := label.(type) {
	case string:
		return v
	case Tuple:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
