package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aki/githelper/internal/cli/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage githelper configuration",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Validate the configuration file against the configuration schema.

This command checks:
- Only known fields are present
- Field types and enumerations are correct
- git.timeout is a valid duration
- HTTP authentication settings are complete`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	manager, err := configManager()
	if err != nil {
		return err
	}
	if !manager.Exists() {
		return fmt.Errorf("config file not found: %s", manager.Path())
	}

	if _, err := manager.Load(); err != nil {
		ui.Error("Configuration validation failed: %v", err)
		return errOperationFailed
	}

	ui.Success("Configuration is valid")
	ui.OutputLine("%s", ui.DimStyle.Render(manager.Path()))
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return ui.NewPrettyFormatter().Output(string(data))
}
