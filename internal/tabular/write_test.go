package tabular

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/recsys-data/pkg/types"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	input := "id,price,active,name\n1,2.0,true,\"a, b\"\n2,,false,\n3,0.25,,c\n"
	tbl, err := ReadString(input)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))

	again, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, tbl, again)
}

func TestWriteJSON(t *testing.T) {
	tbl := &types.Table{Columns: []types.Column{
		{Name: "z", Type: types.TypeInt64, Values: []any{int64(1), nil}},
		{Name: "a", Type: types.TypeFloat64, Values: []any{1.5, math.Inf(1)}},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, tbl))

	// Column order is preserved, not sorted.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(`"z"`)), bytes.Index(buf.Bytes(), []byte(`"a"`)))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, float64(1), rows[0]["z"])
	assert.Equal(t, 1.5, rows[0]["a"])
	assert.Nil(t, rows[1]["z"])
	assert.Nil(t, rows[1]["a"])
}

func TestWriteJSONEmpty(t *testing.T) {
	tbl, err := ReadString("a,b\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, tbl))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{int64(-7), "-7"},
		{2.0, "2.0"},
		{0.0304915254237288, "0.0304915254237288"},
		{math.NaN(), "NaN"},
		{math.Inf(-1), "-inf"},
		{true, "true"},
		{"text", "text"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.in))
	}
}

func TestDescribe(t *testing.T) {
	tbl, err := ReadString("a,b\n1,\n2,x\n")
	require.NoError(t, err)

	s := Describe(tbl)
	assert.Equal(t, 2, s.Rows)
	assert.Equal(t, []ColumnSummary{
		{Name: "a", Type: types.TypeInt64, Nulls: 0},
		{Name: "b", Type: types.TypeString, Nulls: 1},
	}, s.Columns)
}
