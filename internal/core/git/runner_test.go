package git

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aki/githelper/internal/tests/helpers"
)

func TestExecRunner(t *testing.T) {
	repoPath := helpers.CreateTestRepo(t)
	runner := NewExecRunner()
	ctx := context.Background()

	t.Run("captures stdout of a successful command", func(t *testing.T) {
		helpers.WriteFile(t, repoPath, "new.txt", "hello\n")

		outcome, err := runner.Run(ctx, repoPath, "status", "--porcelain")
		require.NoError(t, err)
		assert.True(t, outcome.Success())
		assert.Equal(t, []string{"status", "--porcelain"}, outcome.Args)
		assert.Equal(t, repoPath, outcome.Dir)
		assert.Contains(t, outcome.Stdout, "?? new.txt")
	})

	t.Run("returns CommandError with stderr on non-zero exit", func(t *testing.T) {
		outcome, err := runner.Run(ctx, repoPath, "checkout", "no-such-branch")
		require.Error(t, err)
		assert.False(t, outcome.Success())
		assert.NotZero(t, outcome.ExitCode)

		var cmdErr *CommandError
		require.True(t, errors.As(err, &cmdErr))
		assert.NotEmpty(t, cmdErr.Stderr)
		assert.Equal(t, cmdErr.Stderr, err.Error())
		assert.Equal(t, outcome.ExitCode, cmdErr.ExitCode)
	})

	t.Run("passes arguments without shell interpretation", func(t *testing.T) {
		message := "fix; echo injected $(whoami)"
		helpers.WriteFile(t, repoPath, "msg.txt", "x\n")
		_, err := runner.Run(ctx, repoPath, "add", ".")
		require.NoError(t, err)
		_, err = runner.Run(ctx, repoPath, "commit", "-m", message)
		require.NoError(t, err)

		assert.Equal(t, message, strings.TrimSpace(helpers.HeadCommit(t, repoPath).Message))
	})

	t.Run("reports a missing binary", func(t *testing.T) {
		missing := NewExecRunner(WithBinary("git-does-not-exist"))
		outcome, err := missing.Run(ctx, repoPath, "status")
		require.Error(t, err)
		assert.Equal(t, -1, outcome.ExitCode)

		var cmdErr *CommandError
		require.True(t, errors.As(err, &cmdErr))
		assert.Empty(t, cmdErr.Stderr)
		assert.Contains(t, err.Error(), "git status")
	})
}

func TestExecRunnerOptions(t *testing.T) {
	r := NewExecRunner(WithBinary(""), WithTimeout(0), WithLogger(nil))
	assert.Equal(t, "git", r.binary)
	assert.Equal(t, DefaultTimeout, r.timeout)
	assert.NotNil(t, r.logger)

	r = NewExecRunner(WithBinary("/usr/bin/git"), WithTimeout(5*time.Second))
	assert.Equal(t, "/usr/bin/git", r.binary)
	assert.Equal(t, 5*time.Second, r.timeout)
}
