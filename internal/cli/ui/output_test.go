package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aki/githelper/internal/core/repo"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	t.Cleanup(func() { Stdout, Stderr = oldOut, oldErr })

	return &out, &errOut
}

func TestPrintReport(t *testing.T) {
	t.Run("success goes to stdout", func(t *testing.T) {
		out, errOut := captureOutput(t)
		PrintReport(repo.Report{Kind: repo.KindOK, Message: "Code pushed to GitHub!"})

		assert.Contains(t, out.String(), "Code pushed to GitHub!")
		assert.Empty(t, errOut.String())
	})

	t.Run("errors go to stderr", func(t *testing.T) {
		out, errOut := captureOutput(t)
		PrintReport(repo.Report{Kind: repo.KindError, Category: repo.CategoryPathNotFound, Message: "Repository path does not exist: /x"})

		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "Repository path does not exist: /x")
	})
}

func TestPrintHelpers(t *testing.T) {
	out, errOut := captureOutput(t)

	Success("done %d", 1)
	Info("note")
	Warning("careful")
	Error("failed")
	OutputLine("plain %s", "line")
	Separator(5)

	assert.Contains(t, out.String(), "done 1")
	assert.Contains(t, out.String(), "note")
	assert.Contains(t, out.String(), "careful")
	assert.Contains(t, out.String(), "plain line\n")
	assert.Contains(t, out.String(), "=====\n")
	assert.Contains(t, errOut.String(), "failed")
}

func TestFormatter(t *testing.T) {
	out, _ := captureOutput(t)
	t.Cleanup(func() { GlobalFormatter = NewPrettyFormatter() })

	format, err := ParseFormat("json")
	require.NoError(t, err)
	require.NoError(t, SetGlobalFormatter(format))
	assert.True(t, GlobalFormatter.IsJSON())

	require.NoError(t, GlobalFormatter.Output(map[string]string{"kind": "ok"}))
	assert.Equal(t, "{\n  \"kind\": \"ok\"\n}\n", out.String())

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
	assert.Error(t, SetGlobalFormatter("yaml"))
}

func TestNewTable(t *testing.T) {
	out, _ := captureOutput(t)

	tbl := NewTable("TOOL", "DESCRIPTION")
	tbl.AddRow("git_status", "Check the current git status")
	tbl.Print()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "TOOL")
	assert.Contains(t, lines[1], "git_status")
}
