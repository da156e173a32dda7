package git

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aki/githelper/internal/tests/helpers"
)

func TestLock(t *testing.T) {
	repoPath := helpers.CreateTestRepo(t)
	ctx := context.Background()

	first, err := Lock(ctx, repoPath, time.Second)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(repoPath, MarkerDir, LockFile))

	_, err = Lock(ctx, repoPath, 300*time.Millisecond)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLockTimeout))

	require.NoError(t, first.Unlock())

	second, err := Lock(ctx, repoPath, time.Second)
	require.NoError(t, err)
	require.NoError(t, second.Unlock())

	// The lock file is not part of the work tree
	status := helpers.RunGit(t, repoPath, "status", "--porcelain")
	assert.Empty(t, status)
}

func TestLockPathForLinkedWorktree(t *testing.T) {
	dir := t.TempDir()
	helpers.WriteFile(t, dir, MarkerDir, "gitdir: /elsewhere\n")

	path := lockPath(dir)
	assert.NotContains(t, path, filepath.Join(dir, MarkerDir))
	assert.Equal(t, path, lockPath(dir))
}
