// Package commands implements the githelper command line.
package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/aki/githelper/internal/cli/ui"
)

// errOperationFailed is returned by commands that already printed an error
// report. Execute exits non-zero without printing it again.
var errOperationFailed = errors.New("operation failed")

var (
	flagConfig   string
	flagRepo     string
	flagFormat   string
	flagSelfTest bool
)

var rootCmd = &cobra.Command{
	Use:   "githelper",
	Short: "Git helper MCP server - push and inspect a repository from AI agents",
	Long: `GitHelper exposes a git repository to AI agents over the Model Context Protocol.

Tools:
  push_to_github  stage, commit and push all changes
  git_status      show the working tree status
  set_repo_path   switch the repository the tools operate on

Running githelper without a subcommand starts the MCP server on stdio.
Use --test to exercise the tools directly against the configured repository.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		format, err := ui.ParseFormat(flagFormat)
		if err != nil {
			return err
		}
		return ui.SetGlobalFormatter(format)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagSelfTest {
			return runSelfTest(cmd, args)
		}
		return runMCP(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (default: nearest .githelper/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagRepo, "repo", "r", "", "Repository path (overrides repository.path)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "pretty", "Output format (pretty, json)")
	rootCmd.Flags().BoolVar(&flagSelfTest, "test", false, "Run the tools directly against the repository and exit")
	RegisterLoggerFlags(rootCmd)
	registerTransportFlags(rootCmd.Flags())

	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(setPathCmd)
	rootCmd.AddCommand(selfTestCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errOperationFailed) {
		ui.Error("%v", err)
	}
	return err
}
