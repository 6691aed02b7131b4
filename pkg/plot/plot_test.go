package plot

import (
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegaframe/vegaframe/pkg/errors"
	"github.com/vegaframe/vegaframe/pkg/frame"
	"github.com/vegaframe/vegaframe/pkg/vegalite"
)

func series(t *testing.T) *frame.Series {
	t.Helper()
	return frame.NewSeries("data_name", 0, 1, 2, 3, 4)
}

func dataframe(t *testing.T) *frame.Table {
	t.Helper()
	return frame.MustNewTable([]frame.Column{
		{Name: "x", Values: []interface{}{0, 1, 2, 3, 4}},
		{Name: "y", Values: []interface{}{0, 1, 2, 3, 4}},
	}, nil)
}

// toDict mirrors inspecting a chart through its serialized form.
func toDict(t *testing.T, spec *vegalite.Spec) map[string]interface{} {
	t.Helper()
	data, err := vegalite.Marshal(spec)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, gojson.Unmarshal(data, &m))
	return m
}

func encoding(t *testing.T, m map[string]interface{}, channel string) map[string]interface{} {
	t.Helper()
	enc, ok := m["encoding"].(map[string]interface{})
	require.True(t, ok, "chart has no encoding")
	ch, ok := enc[channel].(map[string]interface{})
	require.True(t, ok, "chart has no %s encoding", channel)
	return ch
}

func mark(t *testing.T, m map[string]interface{}) map[string]interface{} {
	t.Helper()
	def, ok := m["mark"].(map[string]interface{})
	require.True(t, ok, "mark is not a definition object")
	return def
}

func foldTransform(t *testing.T, m map[string]interface{}) []interface{} {
	t.Helper()
	transform, ok := m["transform"].([]interface{})
	require.True(t, ok, "chart has no transform")
	require.NotEmpty(t, transform)
	return transform[0].(map[string]interface{})["fold"].([]interface{})
}

func TestSeriesBasicPlot(t *testing.T) {
	for _, kind := range []Kind{KindLine, KindArea, KindBar, KindBarH} {
		t.Run(string(kind), func(t *testing.T) {
			spec, err := Plot(series(t), kind, Options{})
			require.NoError(t, err)
			m := toDict(t, spec)

			xField, yField := "index", "data_name"
			switch kind {
			case KindBar:
				assert.Equal(t, "vertical", mark(t, m)["orient"])
			case KindBarH:
				assert.Equal(t, "horizontal", mark(t, m)["orient"])
				xField, yField = yField, xField
			}

			expectedMark := string(kind)
			if kind == KindBarH {
				expectedMark = "bar"
			}
			assert.Equal(t, expectedMark, mark(t, m)["type"])
			assert.Equal(t, xField, encoding(t, m, "x")["field"])
			assert.Equal(t, yField, encoding(t, m, "y")["field"])
		})
	}
}

func TestDataFrameBasicPlot(t *testing.T) {
	for _, kind := range []Kind{KindLine, KindArea, KindBar, KindBarH} {
		t.Run(string(kind), func(t *testing.T) {
			spec, err := Plot(dataframe(t), kind, Options{})
			require.NoError(t, err)
			m := toDict(t, spec)

			xField, yField := "index", "value"
			switch kind {
			case KindBar:
				assert.Equal(t, "vertical", mark(t, m)["orient"])
			case KindBarH:
				assert.Equal(t, "horizontal", mark(t, m)["orient"])
				xField, yField = yField, xField
			}

			expectedMark := string(kind)
			if kind == KindBarH {
				expectedMark = "bar"
			}
			assert.Equal(t, expectedMark, mark(t, m)["type"])
			assert.Equal(t, xField, encoding(t, m, "x")["field"])
			assert.Equal(t, yField, encoding(t, m, "y")["field"])
			assert.Equal(t, "column", encoding(t, m, "color")["field"])
			assert.Equal(t, []interface{}{"x", "y"}, foldTransform(t, m))
		})
	}
}

func TestSeriesBarH(t *testing.T) {
	spec, err := Plot(series(t), KindBarH, Options{})
	require.NoError(t, err)
	m := toDict(t, spec)

	assert.Equal(t, map[string]interface{}{"type": "bar", "orient": "horizontal"}, m["mark"])
	assert.Equal(t, "index", encoding(t, m, "y")["field"])
	assert.Equal(t, "data_name", encoding(t, m, "x")["field"])
}

func TestDataFrameBarH(t *testing.T) {
	spec, err := Plot(dataframe(t), KindBarH, Options{})
	require.NoError(t, err)
	m := toDict(t, spec)

	assert.Equal(t, map[string]interface{}{"type": "bar", "orient": "horizontal"}, m["mark"])
	assert.Equal(t, "index", encoding(t, m, "y")["field"])
	assert.Equal(t, "value", encoding(t, m, "x")["field"])
	assert.Equal(t, "column", encoding(t, m, "color")["field"])
	assert.Equal(t, []interface{}{"x", "y"}, foldTransform(t, m))
}

func TestSeriesScatterUnsupported(t *testing.T) {
	_, err := Plot(series(t), KindScatter, Options{X: "x", Y: "y"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeKind))
}

func TestUnknownKind(t *testing.T) {
	_, err := Plot(dataframe(t), Kind("pie"), Options{})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeKind))
}

func TestUnsupportedShape(t *testing.T) {
	_, err := Plot("not a table", KindLine, Options{})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeShape))
}

func TestDataFrameScatter(t *testing.T) {
	df := frame.MustNewTable([]frame.Column{
		{Name: "x", Values: []interface{}{0, 1, 2, 3, 4}},
		{Name: "y", Values: []interface{}{0, 1, 2, 3, 4}},
		{Name: "c", Values: []interface{}{0, 1, 2, 3, 4}},
	}, nil)

	spec, err := Plot(df, KindScatter, Options{X: "x", Y: "y", C: "y", S: "x"})
	require.NoError(t, err)
	m := toDict(t, spec)

	assert.Equal(t, map[string]interface{}{"type": "point"}, m["mark"])
	assert.Equal(t, "x", encoding(t, m, "x")["field"])
	assert.Equal(t, "y", encoding(t, m, "y")["field"])
	assert.Equal(t, "y", encoding(t, m, "color")["field"])
	assert.Equal(t, "x", encoding(t, m, "size")["field"])

	// The working data is restricted to the referenced columns.
	values := m["data"].(map[string]interface{})["values"].([]interface{})
	row := values[0].(map[string]interface{})
	assert.Len(t, row, 2)
	assert.NotContains(t, row, "c")
}

func TestScatterRequiresXY(t *testing.T) {
	_, err := Plot(dataframe(t), KindScatter, Options{X: "x"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeField))

	_, err = Plot(dataframe(t), KindScatter, Options{})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeField))
}

func TestSeriesHist(t *testing.T) {
	for _, tt := range []struct {
		name        string
		bins        *int
		orientation string
	}{
		{"auto vertical", nil, "vertical"},
		{"auto horizontal", nil, "horizontal"},
		{"fixed vertical", Int(10), "vertical"},
		{"fixed horizontal", Int(10), "horizontal"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Plot(series(t), KindHist, Options{Bins: tt.bins, Orientation: tt.orientation})
			require.NoError(t, err)
			m := toDict(t, spec)

			binned, count := "x", "y"
			if tt.orientation == "horizontal" {
				binned, count = "y", "x"
			}

			assert.Equal(t, "bar", mark(t, m)["type"])
			assert.Equal(t, tt.orientation, mark(t, m)["orient"])
			assert.Equal(t, "data_name", encoding(t, m, binned)["field"])
			assert.NotContains(t, encoding(t, m, count), "field")

			if tt.bins == nil {
				assert.Equal(t, true, encoding(t, m, binned)["bin"])
			} else {
				assert.Equal(t, map[string]interface{}{"maxbins": float64(*tt.bins)},
					encoding(t, m, binned)["bin"])
			}
		})
	}
}

func TestHistInvalidOrientation(t *testing.T) {
	_, err := Plot(series(t), KindHist, Options{Orientation: "diagonal"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeOption))
}

func TestDataFrameHist(t *testing.T) {
	for _, tt := range []struct {
		name    string
		stacked *bool
	}{
		{"unset", nil},
		{"stacked", Bool(true)},
		{"unstacked", Bool(false)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Plot(dataframe(t), KindHist, Options{Stacked: tt.stacked})
			require.NoError(t, err)
			m := toDict(t, spec)

			assert.Equal(t, "bar", mark(t, m)["type"])
			assert.Equal(t, "vertical", mark(t, m)["orient"])
			assert.Equal(t, "value", encoding(t, m, "x")["field"])
			assert.Equal(t, true, encoding(t, m, "x")["bin"])
			assert.NotContains(t, encoding(t, m, "y"), "field")
			assert.Equal(t, "column", encoding(t, m, "color")["field"])
			assert.Equal(t, []interface{}{"x", "y"}, foldTransform(t, m))

			stack, present := encoding(t, m, "y")["stack"]
			assert.True(t, present)
			if tt.stacked == nil {
				assert.Nil(t, stack)
			} else {
				assert.Equal(t, *tt.stacked, stack)
			}
		})
	}
}

func TestDataFrameHistHorizontal(t *testing.T) {
	spec, err := Plot(dataframe(t), KindHist, Options{Orientation: "horizontal"})
	require.NoError(t, err)
	m := toDict(t, spec)

	assert.Equal(t, "horizontal", mark(t, m)["orient"])
	assert.Equal(t, "value", encoding(t, m, "y")["field"])
	assert.NotContains(t, encoding(t, m, "x"), "field")
}

func TestSeriesBoxplot(t *testing.T) {
	for _, vert := range []bool{true, false} {
		spec, err := Plot(series(t), KindBox, Options{Vert: Bool(vert)})
		require.NoError(t, err)
		m := toDict(t, spec)

		assert.Equal(t, "boxplot", m["mark"])
		assert.Equal(t, []interface{}{"data_name"}, foldTransform(t, m))

		category, value := "x", "y"
		if !vert {
			category, value = "y", "x"
		}
		assert.Equal(t, "column", encoding(t, m, category)["field"])
		assert.Equal(t, "value", encoding(t, m, value)["field"])
	}
}

func TestDataFrameBoxplot(t *testing.T) {
	for _, vert := range []bool{true, false} {
		spec, err := Plot(dataframe(t), KindBox, Options{Vert: Bool(vert)})
		require.NoError(t, err)
		m := toDict(t, spec)

		assert.Equal(t, "boxplot", m["mark"])
		assert.Equal(t, []interface{}{"x", "y"}, foldTransform(t, m))

		category, value := "x", "y"
		if !vert {
			category, value = "y", "x"
		}
		assert.Equal(t, "column", encoding(t, m, category)["field"])
		assert.Equal(t, "value", encoding(t, m, value)["field"])
	}
}

func TestMarkProperties(t *testing.T) {
	for _, kind := range []Kind{KindHist, KindLine, KindBar, KindBarH} {
		t.Run("series "+string(kind), func(t *testing.T) {
			spec, err := Plot(series(t), kind, Options{Alpha: Float(0.5), Color: "red"})
			require.NoError(t, err)
			m := toDict(t, spec)
			assert.Equal(t, 0.5, mark(t, m)["opacity"])
			assert.Equal(t, "red", mark(t, m)["color"])
		})
		t.Run("dataframe "+string(kind), func(t *testing.T) {
			spec, err := Plot(dataframe(t), kind, Options{Alpha: Float(0.5), Color: "red"})
			require.NoError(t, err)
			m := toDict(t, spec)
			assert.Equal(t, 0.5, mark(t, m)["opacity"])
			assert.Equal(t, "red", mark(t, m)["color"])
		})
	}
}

// assertTitleSuppressed checks that the channel carries an explicit
// "title": null, the instruction that stops a renderer from titling the
// axis or legend after the field name.
func assertTitleSuppressed(t *testing.T, m map[string]interface{}, channel string) {
	t.Helper()
	title, present := encoding(t, m, channel)["title"]
	assert.True(t, present, "%s encoding has no title key", channel)
	assert.Nil(t, title, "%s title is not null", channel)
}

func TestSeriesAxisTitlesSuppressed(t *testing.T) {
	for _, kind := range []Kind{KindLine, KindArea, KindBar, KindBarH} {
		t.Run(string(kind), func(t *testing.T) {
			spec, err := Plot(series(t), kind, Options{})
			require.NoError(t, err)
			m := toDict(t, spec)
			assertTitleSuppressed(t, m, "x")
			assertTitleSuppressed(t, m, "y")
		})
	}

	t.Run("hist binned axis", func(t *testing.T) {
		spec, err := Plot(series(t), KindHist, Options{})
		require.NoError(t, err)
		m := toDict(t, spec)
		assertTitleSuppressed(t, m, "x")
		assert.Equal(t, "Frequency", encoding(t, m, "y")["title"])
	})

	t.Run("box category axis", func(t *testing.T) {
		spec, err := Plot(series(t), KindBox, Options{})
		require.NoError(t, err)
		m := toDict(t, spec)
		assertTitleSuppressed(t, m, "x")
		assert.NotContains(t, encoding(t, m, "y"), "title")
	})
}

func TestDataFrameAxisTitlesSuppressed(t *testing.T) {
	for _, kind := range []Kind{KindLine, KindArea, KindBar} {
		t.Run(string(kind), func(t *testing.T) {
			spec, err := Plot(dataframe(t), kind, Options{})
			require.NoError(t, err)
			m := toDict(t, spec)
			assertTitleSuppressed(t, m, "y")
			assertTitleSuppressed(t, m, "color")
			assert.NotContains(t, encoding(t, m, "x"), "title")
		})
	}

	t.Run("hist binned axis", func(t *testing.T) {
		spec, err := Plot(dataframe(t), KindHist, Options{})
		require.NoError(t, err)
		m := toDict(t, spec)
		assertTitleSuppressed(t, m, "x")
		assert.Equal(t, "Frequency", encoding(t, m, "y")["title"])
		assert.NotContains(t, encoding(t, m, "color"), "title")
	})

	t.Run("box category axis", func(t *testing.T) {
		spec, err := Plot(dataframe(t), KindBox, Options{})
		require.NoError(t, err)
		m := toDict(t, spec)
		assertTitleSuppressed(t, m, "x")
	})
}

func TestColorColumnBecomesEncoding(t *testing.T) {
	spec, err := Plot(dataframe(t), KindLine, Options{Color: "y"})
	require.NoError(t, err)
	m := toDict(t, spec)

	assert.NotContains(t, mark(t, m), "color")
	assert.Equal(t, "y", encoding(t, m, "color")["field"])
}

func TestDataFrameArea(t *testing.T) {
	t.Run("stacked", func(t *testing.T) {
		spec, err := Plot(dataframe(t), KindArea, Options{Stacked: Bool(true)})
		require.NoError(t, err)
		m := toDict(t, spec)
		assert.Equal(t, map[string]interface{}{"type": "area"}, m["mark"])
		assertXYColorFields(t, m, "index", "value", "column")
		assert.Equal(t, []interface{}{"x", "y"}, foldTransform(t, m))
	})

	t.Run("unstacked", func(t *testing.T) {
		spec, err := Plot(dataframe(t), KindArea, Options{Stacked: Bool(false)})
		require.NoError(t, err)
		m := toDict(t, spec)
		assert.Equal(t, map[string]interface{}{
			"type":    "area",
			"line":    true,
			"opacity": 0.5,
		}, m["mark"])
		assertXYColorFields(t, m, "index", "value", "column")
	})
}

func assertXYColorFields(t *testing.T, m map[string]interface{}, x, y, color string) {
	t.Helper()
	assert.Equal(t, x, encoding(t, m, "x")["field"])
	assert.Equal(t, y, encoding(t, m, "y")["field"])
	assert.Equal(t, color, encoding(t, m, "color")["field"])
}

func TestExplicitXY(t *testing.T) {
	spec, err := Plot(dataframe(t), KindLine, Options{X: "x", Y: "y"})
	require.NoError(t, err)
	m := toDict(t, spec)

	assert.Equal(t, "x", encoding(t, m, "x")["field"])
	assert.Equal(t, []interface{}{"y"}, foldTransform(t, m))

	_, err = Plot(dataframe(t), KindLine, Options{X: "missing"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeField))
}

func TestMultiIndexFlattening(t *testing.T) {
	ix := frame.MultiIndex("", [][]interface{}{
		{"a", 1}, {"a", 2}, {"b", 1}, {"b", 2}, {"c", 1}, {"c", 2},
	})

	t.Run("series", func(t *testing.T) {
		s := frame.NewSeries("v", 0, 1, 2, 3, 4, 5).WithIndex(ix)
		spec, err := Plot(s, KindBar, Options{})
		require.NoError(t, err)
		m := toDict(t, spec)

		assert.Equal(t, "index", encoding(t, m, "x")["field"])
		assert.Equal(t, "nominal", encoding(t, m, "x")["type"])

		values := m["data"].(map[string]interface{})["values"].([]interface{})
		first := values[0].(map[string]interface{})
		assert.Equal(t, "('a', 1)", first["index"])
	})

	t.Run("dataframe", func(t *testing.T) {
		df := frame.MustNewTable([]frame.Column{
			{Name: "x", Values: []interface{}{0, 1, 2, 3, 4, 5}},
		}, &ix)
		spec, err := Plot(df, KindBar, Options{})
		require.NoError(t, err)
		m := toDict(t, spec)

		assert.Equal(t, "index", encoding(t, m, "x")["field"])
		assert.Equal(t, "nominal", encoding(t, m, "x")["type"])
	})
}

func TestNonStringColumnNames(t *testing.T) {
	cols := make([]frame.Column, 4)
	for i := range cols {
		cols[i] = frame.Col(i, 1.0, 1.0, 1.0)
	}
	df := frame.MustNewTable(cols, nil)

	spec, err := Plot(df, KindScatter, Options{X: "0", Y: "1", C: "2", S: "3"})
	require.NoError(t, err)
	m := toDict(t, spec)

	assert.Equal(t, "0", encoding(t, m, "x")["field"])
	assert.Equal(t, "1", encoding(t, m, "y")["field"])
	assert.Equal(t, "2", encoding(t, m, "color")["field"])
	assert.Equal(t, "3", encoding(t, m, "size")["field"])
}

// Plotting never touches the source data.
func TestPlotDoesNotMutateInput(t *testing.T) {
	df := frame.MustNewTable([]frame.Column{
		{Name: "x", Values: []interface{}{0, 1, 2}},
		{Name: "y", Values: []interface{}{3, 4, 5}},
	}, nil)

	_, err := Plot(df, KindBar, Options{})
	require.NoError(t, err)
	_, err = Plot(df, KindScatter, Options{X: "x", Y: "y"})
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, df.ColumnNames())
	x, _ := df.Column("x")
	assert.Equal(t, []interface{}{0, 1, 2}, x.Values)
	assert.Equal(t, []interface{}{0, 1, 2}, df.Index().Labels)
}
