package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aki/githelper/internal/cli/ui"
	"github.com/aki/githelper/internal/core/config"
)

var setPathCmd = &cobra.Command{
	Use:   "set-path <path>",
	Short: "Change the repository the tools operate on",
	Long: `Validate that path is a git repository and store it as repository.path
in the configuration file so later runs use it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup()
		if err != nil {
			return err
		}

		newPath, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}

		report := app.executor.Relocate(app.withLogger(cmd.Context()), newPath)
		if report.IsError() {
			return outputReport(report)
		}

		err = app.manager.Update(cmd.Context(), func(cfg *config.Config) error {
			cfg.Repository.Path = newPath
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to save repository path: %w", err)
		}

		if err := outputReport(report); err != nil {
			return err
		}
		if !ui.GlobalFormatter.IsJSON() {
			ui.OutputLine("%s", ui.DimStyle.Render("Saved to "+app.manager.Path()))
		}
		return nil
	},
}
