// Package helpers builds throwaway git repositories for tests.
package helpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// CreateTestRepo creates a git repository on branch main with one commit
// containing README.md. The directory is removed when the test ends.
func CreateTestRepo(t *testing.T) string {
	t.Helper()

	isolateGitEnv(t)

	// Outside any existing repository so git does not discover a parent
	tmpDir, err := os.MkdirTemp(os.TempDir(), "githelper-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	if err := exec.Command("git", "-C", tmpDir, "init", "--initial-branch=main").Run(); err != nil {
		// Older git without --initial-branch
		RunGit(t, tmpDir, "init")
	}

	RunGit(t, tmpDir, "config", "user.email", "test@example.com")
	RunGit(t, tmpDir, "config", "user.name", "Test User")
	RunGit(t, tmpDir, "config", "commit.gpgsign", "false")

	WriteFile(t, tmpDir, "README.md", "# Test Repository\n")
	RunGit(t, tmpDir, "add", "README.md")
	RunGit(t, tmpDir, "commit", "-m", "Initial commit")
	RunGit(t, tmpDir, "branch", "-M", "main")

	return tmpDir
}

// CreateBareRemote creates a bare repository and registers it as remote
// name of repoPath.
func CreateBareRemote(t *testing.T, repoPath, name string) string {
	t.Helper()

	bareDir := t.TempDir()
	RunGit(t, bareDir, "init", "--bare")
	RunGit(t, repoPath, "remote", "add", name, bareDir)

	return bareDir
}

// CreatePlainDir creates an existing directory with no .git entry
func CreatePlainDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	WriteFile(t, dir, "notes.txt", "not a repository\n")
	return dir
}

// RunGit runs git in dir and fails the test on a non-zero exit
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v, output: %s", args, err, output)
	}
	return string(output)
}

// WriteFile writes content to name inside dir
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create parent of %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// HeadCommit returns the HEAD commit of the repository at path
func HeadCommit(t *testing.T, path string) *object.Commit {
	t.Helper()

	repo, err := gogit.PlainOpen(path)
	if err != nil {
		t.Fatalf("Failed to open repository %s: %v", path, err)
	}
	ref, err := repo.Head()
	if err != nil {
		t.Fatalf("Failed to resolve HEAD: %v", err)
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		t.Fatalf("Failed to read HEAD commit: %v", err)
	}
	return commit
}

// CommitCount returns the number of commits reachable from HEAD
func CommitCount(t *testing.T, path string) int {
	t.Helper()

	repo, err := gogit.PlainOpen(path)
	if err != nil {
		t.Fatalf("Failed to open repository %s: %v", path, err)
	}
	iter, err := repo.Log(&gogit.LogOptions{})
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}

	count := 0
	_ = iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	return count
}

// isolateGitEnv clears variables that would redirect git away from the
// test repository.
func isolateGitEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"GIT_DIR", "GIT_WORK_TREE", "GIT_INDEX_FILE"} {
		if _, ok := os.LookupEnv(key); ok {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
}
