package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/githelper/internal/cli/ui"
	"github.com/aki/githelper/internal/core/repo"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the repository working tree status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup()
		if err != nil {
			return err
		}
		return outputReport(app.executor.Inspect(app.withLogger(cmd.Context())))
	},
}

// outputReport prints report in the selected format and turns an error
// report into errOperationFailed.
func outputReport(report repo.Report) error {
	if ui.GlobalFormatter.IsJSON() {
		if err := ui.GlobalFormatter.Output(report); err != nil {
			return err
		}
	} else {
		ui.PrintReport(report)
	}

	if report.IsError() {
		return errOperationFailed
	}
	return nil
}
