package commands

import (
	"github.com/spf13/cobra"
)

var pushMessage string

var pushCmd = &cobra.Command{
	Use:   "push [commit-message]",
	Short: "Stage, commit and push all changes",
	Long: `Stage every change, commit it and push the branch to the remote with upstream tracking.

The commit message defaults to repository.default_commit_message ("auto commit").
Nothing is committed or pushed when the working tree is clean.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := pushMessage
		if len(args) == 1 {
			message = args[0]
		}

		app, err := setup()
		if err != nil {
			return err
		}
		return outputReport(app.executor.Synchronize(app.withLogger(cmd.Context()), message))
	},
}

func init() {
	pushCmd.Flags().StringVarP(&pushMessage, "message", "m", "", "Commit message")
}
