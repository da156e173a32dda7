package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aki/githelper/internal/cli/ui"
	"github.com/aki/githelper/internal/core/config"
	"github.com/aki/githelper/internal/core/git"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a githelper configuration in the current directory",
	Long:  "Write .githelper/config.yaml with default settings in the current directory",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var forceInit bool

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	manager := config.NewManagerForDir(cwd)
	if manager.Exists() && !forceInit {
		return fmt.Errorf("githelper already initialized. Use --force to reinitialize")
	}

	if err := manager.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	ui.Success("githelper initialized in %s", cwd)
	ui.OutputLine("Configuration: %s", manager.Path())
	if !git.HasMarker(cwd) {
		ui.Warning("%s is not a git repository; set repository.path or run 'githelper set-path'", cwd)
	}
	ui.OutputLine("\nRun 'githelper mcp' to start the MCP server")

	return nil
}
