// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tabular parses CSV documents into typed in-memory tables and
// writes tables back out as CSV or JSON.
//
// Parsing follows the usual dataframe conventions: the first record is the
// header, empty cells are null, and each column's type is inferred from
// its non-null cells (int64, float64, bool, otherwise string).
package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/recsys-data/pkg/types"
)

var (
	// ErrNoHeader is returned when the document has no header record,
	// including a zero-byte document.
	ErrNoHeader = errors.New("missing header row")

	// ErrInvalidUTF8 is returned when a field is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrNULByte is returned when a field contains a NUL byte, which only
	// appears in binary content.
	ErrNULByte = errors.New("unexpected NUL byte")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Read parses a comma-separated document with a header row. Every data
// record must have as many fields as the header. The returned table owns
// all of its values.
func Read(r io.Reader) (*types.Table, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, name := range header {
		if err := checkField(name); err != nil {
			return nil, fmt.Errorf("header field %d: %w", i+1, err)
		}
	}
	names := dedupeNames(header)

	cells := make([][]string, len(names))
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		for i, field := range record {
			if err := checkField(field); err != nil {
				line, _ := cr.FieldPos(i)
				return nil, fmt.Errorf("line %d, column %q: %w", line, names[i], err)
			}
			cells[i] = append(cells[i], field)
		}
	}

	table := &types.Table{Columns: make([]types.Column, len(names))}
	for i, name := range names {
		typ := inferType(cells[i])
		values, err := convert(cells[i], typ)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		table.Columns[i] = types.Column{Name: name, Type: typ, Values: values}
	}
	return table, nil
}

// ReadString parses a CSV document held in memory.
func ReadString(s string) (*types.Table, error) {
	return Read(strings.NewReader(s))
}

func checkField(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	if strings.IndexByte(s, 0) >= 0 {
		return ErrNULByte
	}
	return nil
}

// dedupeNames renames repeated header names to name_duplicated_N, counting
// from 0 per name.
func dedupeNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		n, dup := seen[name]
		if dup {
			names[i] = fmt.Sprintf("%s_duplicated_%d", name, n)
			seen[name] = n + 1
			continue
		}
		seen[name] = 0
		names[i] = name
	}
	return names
}

func convert(cells []string, typ types.ColumnType) ([]any, error) {
	values := make([]any, len(cells))
	for i, s := range cells {
		if s == "" {
			continue
		}
		switch typ {
		case types.TypeInt64:
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, err
			}
			values[i] = v
		case types.TypeFloat64:
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, err
			}
			values[i] = v
		case types.TypeBool:
			values[i] = strings.EqualFold(s, "true")
		default:
			values[i] = s
		}
	}
	return values, nil
}
