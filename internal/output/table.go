package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableRow is one row of a rendered table.
type TableRow struct {
	Columns []string
}

// RenderTable writes headers and rows to w as a bordered table.
func RenderTable(w io.Writer, headers []string, rows []TableRow) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(headers)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, row := range rows {
		tw.Append(row.Columns)
	}
	tw.Render()
}
