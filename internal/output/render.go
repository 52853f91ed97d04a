// Package output renders datasets, summaries, and remote file listings as
// aligned text tables for the interactive shell.
package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"

	"tabshell/internal/dataset"
	"tabshell/pkg/tabtypes"
)

// BoldStyle highlights the leading column of rendered tables.
var BoldStyle = lipgloss.NewStyle().Bold(true)

// newTable creates a table with consistent styling, rendering into sb.
func newTable(sb *strings.Builder, headers ...interface{}) table.Table {
	tbl := table.New(headers...)
	tbl.WithWriter(sb)
	tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
		return BoldStyle.Render(fmt.Sprintf(format, vals...))
	})
	tbl.WithPadding(2)
	tbl.WithWidthFunc(lipgloss.Width)
	return tbl
}

// RenderStats renders describe output, one row per numeric column.
func RenderStats(stats []dataset.ColumnStats) string {
	if len(stats) == 0 {
		return "No numeric columns to describe."
	}

	var sb strings.Builder
	tbl := newTable(&sb, "Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max")
	for _, s := range stats {
		tbl.AddRow(s.Column, s.Count,
			formatFloat(s.Mean), formatFloat(s.Std), formatFloat(s.Min),
			formatFloat(s.Q25), formatFloat(s.Median), formatFloat(s.Q75), formatFloat(s.Max))
	}
	tbl.Print()
	return sb.String()
}

// RenderMissing renders per-column missing-value counts.
func RenderMissing(counts []dataset.MissingCount) string {
	var sb strings.Builder
	tbl := newTable(&sb, "Column", "Missing")
	for _, c := range counts {
		tbl.AddRow(c.Column, c.Count)
	}
	tbl.Print()
	return sb.String()
}

// RenderFiles renders remote file descriptors returned by the listing binding.
func RenderFiles(files []tabtypes.RemoteFile) string {
	if len(files) == 0 {
		return "No files found."
	}

	var sb strings.Builder
	tbl := newTable(&sb, "ID", "Name", "MIME Type")
	for _, f := range files {
		tbl.AddRow(f.ID, f.Name, f.MimeType)
	}
	tbl.Print()
	return sb.String()
}

// RenderPreview renders up to maxRows rows of a dataset.
func RenderPreview(ds *dataset.Dataset, maxRows int) string {
	headers := make([]interface{}, len(ds.Columns))
	for i, c := range ds.Columns {
		headers[i] = c
	}

	var sb strings.Builder
	tbl := newTable(&sb, headers...)
	shown := 0
	for _, row := range ds.Rows {
		if shown >= maxRows {
			break
		}
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		tbl.AddRow(cells...)
		shown++
	}
	tbl.Print()
	if len(ds.Rows) > maxRows {
		fmt.Fprintf(&sb, "... %d more rows\n", len(ds.Rows)-maxRows)
	}
	return sb.String()
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.6g", v)
}
