package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/githelper/internal/cli/ui"
	"github.com/aki/githelper/internal/core/git"
)

// SelfTestCommitMessage is the commit message used by the self-test push
const SelfTestCommitMessage = "Test commit from MCP server"

var selfTestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the tools directly against the repository",
	Long: `Run git status, print repository checks and push with a test commit.
This is the same as githelper --test.`,
	Args: cobra.NoArgs,
	RunE: runSelfTest,
}

func runSelfTest(cmd *cobra.Command, args []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	ctx := app.withLogger(cmd.Context())
	path := app.executor.Path()

	ui.OutputLine("%s Testing Git Helper functions...", ui.TestIcon)
	ui.Separator(50)

	ui.OutputLine("1. Testing git status:")
	ui.PrintReport(app.executor.Inspect(ctx))

	ui.OutputLine("")
	ui.OutputLine("2. Repository path: %s", path)
	ui.OutputLine("   Path exists: %t", git.PathExists(path))
	ui.OutputLine("   Is git repo: %t", git.HasMarker(path))
	if info, err := git.Describe(path); err == nil {
		ui.OutputLine("   Branch:      %s", info.CurrentBranch)
		ui.OutputLine("   HEAD:        %s", info.Head)
		if info.RemoteURL != "" {
			ui.OutputLine("   Remote:      %s", info.RemoteURL)
		}
	} else {
		app.log.Debug("failed to describe repository", "path", path, "error", err)
	}

	ui.OutputLine("")
	ui.OutputLine("3. Testing git push:")
	report := app.executor.Synchronize(ctx, SelfTestCommitMessage)
	ui.PrintReport(report)

	ui.OutputLine("")
	ui.OutputLine("%s Testing completed!", ui.DoneIcon)

	if report.IsError() {
		return errOperationFailed
	}
	return nil
}
