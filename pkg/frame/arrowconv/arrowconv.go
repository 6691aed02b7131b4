// Package arrowconv converts Apache Arrow records into frame tables, so
// columnar data produced elsewhere can be plotted without a manual copy
// into columns.
package arrowconv

import (
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/vegaframe/vegaframe/pkg/errors"
	"github.com/vegaframe/vegaframe/pkg/frame"
)

// FromRecord converts an Arrow record batch into a Table with a default
// range index. Null cells become nil values. Unsupported column types fail
// with a data error rather than being silently dropped.
func FromRecord(rec arrow.Record) (*frame.Table, error) {
	schema := rec.Schema()
	cols := make([]frame.Column, int(rec.NumCols()))

	for i := 0; i < int(rec.NumCols()); i++ {
		arr := rec.Column(i)
		values := make([]interface{}, arr.Len())
		for j := 0; j < arr.Len(); j++ {
			v, err := extractValue(arr, j)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeData,
					"unsupported column "+schema.Field(i).Name)
			}
			values[j] = v
		}
		cols[i] = frame.Column{Name: schema.Field(i).Name, Values: values}
	}

	return frame.NewTable(cols, nil)
}

// extractValue extracts a value from an Arrow array at a specific index.
func extractValue(arr arrow.Array, index int) (interface{}, error) {
	if arr.IsNull(index) {
		return nil, nil
	}

	switch a := arr.(type) {
	case *array.Boolean:
		return a.Value(index), nil
	case *array.Int32:
		return a.Value(index), nil
	case *array.Int64:
		return a.Value(index), nil
	case *array.Float32:
		return a.Value(index), nil
	case *array.Float64:
		return a.Value(index), nil
	case *array.String:
		return a.Value(index), nil
	case *array.Date32:
		days := a.Value(index)
		return time.Unix(int64(days)*86400, 0).UTC(), nil
	case *array.Timestamp:
		ts := a.Value(index)
		tsType := a.DataType().(*arrow.TimestampType)
		switch tsType.Unit {
		case arrow.Second:
			return time.Unix(int64(ts), 0).UTC(), nil
		case arrow.Millisecond:
			return time.Unix(0, int64(ts)*1e6).UTC(), nil
		case arrow.Microsecond:
			return time.Unix(0, int64(ts)*1e3).UTC(), nil
		default:
			return time.Unix(0, int64(ts)).UTC(), nil
		}
	default:
		return nil, errors.Newf(errors.ErrorTypeData,
			"no conversion for Arrow type %s", arr.DataType().Name())
	}
}
