package cmd

import "github.com/pterm/pterm"

// PrintTableNoPad renders rows as a table without cell padding on the edges.
func PrintTableNoPad(rows pterm.TableData, hasHeader bool) {
	table := pterm.DefaultTable.WithData(rows).WithLeftAlignment()
	if hasHeader {
		table = table.WithHasHeader()
	}
	_ = table.Render()
}
