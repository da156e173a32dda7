package commands

import (
	"bytes"
	"testing"

	"github.com/aki/githelper/internal/cli/ui"
)

// executeCommand runs the root command with args and returns what was
// written to ui.Stdout and ui.Stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()

	var out, errOut bytes.Buffer
	oldOut, oldErr := ui.Stdout, ui.Stderr
	ui.Stdout, ui.Stderr = &out, &errOut
	t.Cleanup(func() {
		ui.Stdout, ui.Stderr = oldOut, oldErr
		ui.GlobalFormatter = ui.NewPrettyFormatter()
	})

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags() {
	flagConfig = ""
	flagRepo = ""
	flagFormat = "pretty"
	flagSelfTest = false
	flagLogLevel = "error"
	flagLogFormat = "text"
	serveTransport = ""
	servePort = 0
	serveAuthType = ""
	serveAuthToken = ""
	serveAuthUser = ""
	serveAuthPass = ""
	pushMessage = ""
	forceInit = false
}
