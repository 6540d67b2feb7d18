package presenter

import (
	"io"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatValue prints integral values without decimals and everything else
// with two.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// RenderSummary prints s as a two-column table.
func RenderSummary(w io.Writer, s Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"", CSVHeader})
	for _, r := range s.Rows() {
		t.AppendRow(table.Row{r.Label, FormatValue(r.Value)})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
