// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/recsys-data/pkg/types"
)

// WriteCSV writes t as a comma-separated document with a header row.
// Null cells are written as empty fields. Reading the output back with
// Read yields an equal table.
func WriteCSV(w io.Writer, t *types.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, t.Width())
	for i := 0; i < t.Height(); i++ {
		for j, c := range t.Columns {
			record[j] = FormatValue(c.Values[i])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes t as a JSON array of row objects. Keys appear in column
// order. Nulls and non-finite floats are written as null.
func WriteJSON(w io.Writer, t *types.Table) error {
	bw := bufio.NewWriter(w)

	keys := make([][]byte, t.Width())
	for j, name := range t.Names() {
		k, err := json.Marshal(name)
		if err != nil {
			return fmt.Errorf("encoding column name %q: %w", name, err)
		}
		keys[j] = k
	}

	bw.WriteString("[")
	for i := 0; i < t.Height(); i++ {
		if i > 0 {
			bw.WriteString(",")
		}
		bw.WriteString("\n  {")
		for j, c := range t.Columns {
			if j > 0 {
				bw.WriteString(",")
			}
			bw.Write(keys[j])
			bw.WriteString(":")
			v, err := jsonValue(c.Values[i])
			if err != nil {
				return fmt.Errorf("encoding row %d column %q: %w", i, c.Name, err)
			}
			bw.Write(v)
		}
		bw.WriteString("}")
	}
	if t.Height() > 0 {
		bw.WriteString("\n")
	}
	bw.WriteString("]\n")
	return bw.Flush()
}

func jsonValue(v any) ([]byte, error) {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// FormatValue renders a cell the way WriteCSV does. Floats always carry a
// decimal point so they read back as float64.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		switch {
		case math.IsNaN(x):
			return "NaN"
		case math.IsInf(x, 1):
			return "inf"
		case math.IsInf(x, -1):
			return "-inf"
		}
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case bool:
		return strconv.FormatBool(x)
	case string:
		return x
	}
	return fmt.Sprint(v)
}
