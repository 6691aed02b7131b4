package frame

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vegaframe/vegaframe/pkg/errors"
)

// ReadCSV reads a headered CSV stream into a Table with a default range
// index. Columns whose cells all parse as numbers are loaded as numeric
// columns (integers when every cell is integral); everything else stays a
// string column.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrorTypeData, "empty CSV input")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to read CSV header")
	}

	raw := make([][]string, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to read CSV row")
		}
		for i := range header {
			raw[i] = append(raw[i], record[i])
		}
	}

	cols := make([]Column, len(header))
	for i, name := range header {
		cols[i] = Column{Name: name, Values: coerceColumn(raw[i])}
	}
	return NewTable(cols, nil)
}

// coerceColumn converts a column of raw cells to the narrowest uniform type.
func coerceColumn(cells []string) []interface{} {
	numeric := true
	integral := true
	for _, cell := range cells {
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			numeric = false
			break
		}
		if _, err := strconv.Atoi(cell); err != nil {
			integral = false
		}
	}

	values := make([]interface{}, len(cells))
	for i, cell := range cells {
		switch {
		case numeric && integral:
			v, _ := strconv.Atoi(cell)
			values[i] = v
		case numeric:
			v, _ := strconv.ParseFloat(cell, 64)
			values[i] = v
		default:
			values[i] = cell
		}
	}
	return values
}
