package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/githelper/internal/cli/ui"
	"github.com/aki/githelper/internal/mcp"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ui.GlobalFormatter.IsJSON() {
			return ui.GlobalFormatter.Output(mcp.ToolSummaries())
		}
		printToolsTable()
		return nil
	},
}

func printToolsTable() {
	tbl := ui.NewTable("TOOL", "DESCRIPTION")
	for _, tool := range mcp.ToolSummaries() {
		tbl.AddRow(tool.Name, tool.Summary)
	}
	tbl.Print()
}
