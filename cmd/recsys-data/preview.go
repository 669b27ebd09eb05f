package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/recsys-data/internal/tabular"
	"github.com/pdiddy/recsys-data/pkg/types"
)

const maxCellWidth = 24

// writePreview prints the shape, schema, and first head rows of tbl.
func writePreview(w io.Writer, name string, tbl *types.Table, head int) {
	fmt.Fprintf(w, "%s: %d rows x %d columns\n", name, tbl.Height(), tbl.Width())
	for _, c := range tabular.Describe(tbl).Columns {
		fmt.Fprintf(w, "  %-30s  %-8s  nulls=%d\n", c.Name, c.Type, c.Nulls)
	}

	if head <= 0 || tbl.Height() == 0 {
		fmt.Fprintln(w)
		return
	}

	rows := tbl.Slice(0, head)
	cells := make([][]string, rows.Height()+1)
	cells[0] = make([]string, rows.Width())
	for j, n := range rows.Names() {
		cells[0][j] = truncate(n)
	}
	for i := 0; i < rows.Height(); i++ {
		cells[i+1] = make([]string, rows.Width())
		for j, v := range rows.Row(i) {
			s := tabular.FormatValue(v)
			if v == nil {
				s = "null"
			}
			cells[i+1][j] = truncate(s)
		}
	}

	widths := make([]int, rows.Width())
	for _, r := range cells {
		for j, s := range r {
			widths[j] = max(widths[j], len([]rune(s)))
		}
	}

	fmt.Fprintln(w)
	for i, r := range cells {
		parts := make([]string, len(r))
		for j, s := range r {
			parts[j] = s + strings.Repeat(" ", widths[j]-len([]rune(s)))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		if i == 0 {
			total := 0
			for _, wd := range widths {
				total += wd + 2
			}
			fmt.Fprintln(w, strings.Repeat("-", max(total-2, 0)))
		}
	}
	fmt.Fprintln(w)
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxCellWidth {
		return string(r[:maxCellWidth-3]) + "..."
	}
	return s
}
