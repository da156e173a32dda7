package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
)

// NewTable creates a table writing to Stdout with the first column in bold
func NewTable(headers ...interface{}) table.Table {
	tbl := table.New(headers...)

	tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
		return BoldStyle.Render(fmt.Sprintf(format, vals...))
	})
	tbl.WithPadding(2)
	// lipgloss.Width ignores ANSI escapes when measuring cells
	tbl.WithWidthFunc(lipgloss.Width)
	tbl.WithWriter(Stdout)

	return tbl
}
