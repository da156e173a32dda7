package git

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// LockFile is the advisory lock file created inside the .git directory
const LockFile = "githelper.lock"

// ErrLockTimeout is returned when the repository lock cannot be acquired in time
var ErrLockTimeout = errors.New("timeout acquiring repository lock")

// RepoLock is a process-wide advisory lock on one repository
type RepoLock struct {
	lock *flock.Flock
}

// Lock acquires the advisory lock for repoPath, retrying until timeout or
// until ctx is done.
func Lock(ctx context.Context, repoPath string, timeout time.Duration) (*RepoLock, error) {
	lock := flock.New(lockPath(repoPath))

	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		if lockCtx.Err() == context.DeadlineExceeded {
			return nil, ErrLockTimeout
		}
		return nil, fmt.Errorf("failed to acquire repository lock: %w", err)
	}
	if !locked {
		return nil, ErrLockTimeout
	}

	return &RepoLock{lock: lock}, nil
}

// Unlock releases the lock
func (l *RepoLock) Unlock() error {
	return l.lock.Unlock()
}

// lockPath keeps the lock file out of the work tree. Linked worktrees have
// a .git file instead of a directory, so they lock in the temp dir.
func lockPath(repoPath string) string {
	marker := filepath.Join(repoPath, MarkerDir)
	if info, err := os.Stat(marker); err == nil && info.IsDir() {
		return filepath.Join(marker, LockFile)
	}

	abs, err := filepath.Abs(repoPath)
	if err != nil {
		abs = repoPath
	}
	sum := sha1.Sum([]byte(abs))
	return filepath.Join(os.TempDir(), "githelper-"+hex.EncodeToString(sum[:8])+".lock")
}
