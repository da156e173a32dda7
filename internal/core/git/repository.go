package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// MarkerDir is the entry whose presence marks a directory as a git work tree
const MarkerDir = ".git"

// ErrNoMarker is returned when a directory has no .git entry
var ErrNoMarker = errors.New("no .git entry found")

// PathExists reports whether path exists on disk
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// HasMarker reports whether path contains a .git entry. A .git file (as
// created for linked worktrees) counts as well as a directory.
func HasMarker(path string) bool {
	return PathExists(filepath.Join(path, MarkerDir))
}

// RepositoryInfo summarizes a repository for banners and diagnostics
type RepositoryInfo struct {
	Path          string `json:"path"`
	CurrentBranch string `json:"currentBranch,omitempty"`
	Head          string `json:"head,omitempty"`
	RemoteURL     string `json:"remoteUrl,omitempty"`
	IsClean       bool   `json:"isClean"`
}

// Describe opens the repository at path with go-git and reads its branch,
// HEAD commit, first remote URL and cleanliness. A repository without
// commits is reported with empty branch and head.
func Describe(path string) (*RepositoryInfo, error) {
	if !HasMarker(path) {
		return nil, fmt.Errorf("%s: %w", path, ErrNoMarker)
	}

	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	info := &RepositoryInfo{Path: path}

	if ref, err := repo.Head(); err == nil {
		info.CurrentBranch = ref.Name().Short()
		info.Head = ref.Hash().String()
	}

	if remotes, err := repo.Remotes(); err == nil && len(remotes) > 0 {
		if urls := remotes[0].Config().URLs; len(urls) > 0 {
			info.RemoteURL = urls[0]
		}
	}

	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			info.IsClean = status.IsClean()
		}
	}

	return info, nil
}
