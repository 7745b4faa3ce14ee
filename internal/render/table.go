// Package render writes tabular output for analysis results.
package render

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table writes rows under headers to w as an ASCII grid.
//
// Headers render exactly as given and cells are never wrapped, so tree
// labels keep their indentation.
func Table(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
